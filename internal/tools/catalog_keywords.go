package tools

import "github.com/occirank/Haloscan-mcp-server/internal/haloscan"

// KeywordOverviewBlocks is the default requested_data of get_keywords_overview.
var KeywordOverviewBlocks = []string{
	"keyword_match",
	"related_search",
	"related_question",
	"similar_category",
	"similar_serp",
	"top_sites",
	"similar_highlight",
	"categories",
	"synonyms",
	"metrics",
	"volume_history",
	"serp",
}

func keywordCapabilities() []Capability {
	return []Capability{
		{
			Name:        "get_keywords_overview",
			Description: "Get an overview of a keyword: metrics, SERP, related searches and questions.",
			Action:      "getting keywords overview",
			Route:       "/keywords/overview",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				required(seedKeyword()),
				Field{
					Name:        "requested_data",
					Type:        TypeStringArray,
					Default:     KeywordOverviewBlocks,
					Description: "Specific data blocks to request.",
				},
				text("lang", "Language of the seed keyword."),
			),
		},
		{
			Name:        "get_keywords_match",
			Description: "Get keywords containing the seed keyword.",
			Action:      "getting keywords match",
			Route:       "/keywords/match",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(keywordFilters(), required(seedKeyword()), exactMatch()),
		},
		{
			Name:        "get_keywords_similar",
			Description: "Get keywords semantically similar to the seed keyword.",
			Action:      "getting keywords similar",
			Route:       "/keywords/similar",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				keywordFilters(),
				required(seedKeyword()),
				ranges("similarity", "score", "p1_score"),
			),
		},
		{
			Name:        "get_keywords_highlights",
			Description: "Get the terms highlighted by the search engine for the seed keyword.",
			Action:      "getting keywords highlights",
			Route:       "/keywords/highlights",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				keywordFilters(),
				required(seedKeyword()),
				exactMatch(),
				ranges("similarity"),
			),
		},
		{
			Name:        "get_keywords_related",
			Description: "Get related searches for the seed keyword.",
			Action:      "getting keywords related",
			Route:       "/keywords/related",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				keywordFilters(),
				required(seedKeyword()),
				exactMatch(),
				ranges("depth"),
			),
		},
		{
			Name:        "get_keywords_questions",
			Description: "Get questions asked around the seed keyword.",
			Action:      "getting keywords questions",
			Route:       "/keywords/questions",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				keywordFilters(),
				required(seedKeyword()),
				exactMatch(),
				texts("question_types", "Question types to keep."),
				flag("keep_only_paa", "Only keep \"People also ask\" questions."),
				ranges("depth"),
			),
		},
		{
			Name:        "get_keywords_synonyms",
			Description: "Get synonyms of the seed keyword.",
			Action:      "getting keywords synonyms",
			Route:       "/keywords/synonyms",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(keywordFilters(), required(seedKeyword()), exactMatch()),
		},
		{
			Name:        "get_keywords_find",
			Description: "Find keywords from one or more seeds across several sources.",
			Action:      "getting keywords find",
			Route:       "/keywords/find",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				keywordFilters(),
				seedKeyword(),
				texts("keywords", "Seed keywords."),
				texts("keywords_sources", "Sources to search: match, similar, related, highlights, ..."),
				flag("keep_seed", "Keep the seed keywords in the results."),
				exactMatch(),
			),
		},
		{
			Name:        "get_keywords_site_structure",
			Description: "Group keywords into a suggested site structure.",
			Action:      "getting keywords site structure",
			Route:       "/keywords/siteStructure",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				seedKeyword(),
				texts("keywords", "Seed keywords."),
				exactMatch(),
				texts("neighbours_sources", "Sources used to find neighbouring keywords."),
				texts("multipartite_modes", "Clustering modes."),
				number("neighbours_sample_max_size", "Max number of neighbours sampled."),
				text("mode", "Clustering mode."),
				number("granularity", "Clustering granularity."),
				number("manual_common_10", "Common results required in the top 10."),
				number("manual_common_100", "Common results required in the top 100."),
			),
		},
		{
			Name:        "get_keywords_serp_compare",
			Description: "Compare the SERP of a keyword between two dates.",
			Action:      "getting keywords serp compare",
			Route:       "/keywords/serp/compare",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				required(seedKeyword()),
				required(text("period", "Comparison period.")),
				text("first_date", "First SERP date."),
				text("second_date", "Second SERP date."),
			),
		},
		{
			Name:        "get_keywords_serp_availableDates",
			Description: "List the dates for which a SERP of the keyword is available.",
			Action:      "getting keywords serp availableDates",
			Route:       "/keywords/serp/availableDates",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(required(seedKeyword())),
		},
		{
			Name:        "get_keywords_serp_pageEvolution",
			Description: "Get the position evolution of one URL on the SERP of a keyword.",
			Action:      "getting keywords serp pageEvolution",
			Route:       "/keywords/serp/pageEvolution",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				required(seedKeyword()),
				required(text("first_date", "Start date.")),
				required(text("second_date", "End date.")),
				required(text("url", "Page URL.")),
			),
		},
		{
			Name:        "get_keywords_bulk",
			Description: "Get metrics for a list of keywords.",
			Action:      "getting keywords bulk",
			Route:       "/keywords/bulk",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				keywordFilters(),
				required(texts("keywords", "Keywords to look up.")),
				exactMatch(),
			),
		},
		{
			Name:        "get_keywords_scrap",
			Description: "Request a fresh scrape of the SERP for a list of keywords.",
			Action:      "getting keywords scrap",
			Route:       "/keywords/scrap",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(required(texts("keywords", "Keywords to scrape."))),
		},
	}
}
