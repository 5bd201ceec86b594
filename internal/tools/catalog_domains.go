package tools

import "github.com/occirank/Haloscan-mcp-server/internal/haloscan"

func pageMetricRanges() []Field {
	return ranges(
		"total_traffic", "unique_keywords",
		"total_top_3", "total_top_10", "total_top_50", "total_top_100",
	)
}

func keywordTextFilters() []Field {
	return []Field{
		text("keyword_include", "Only keep keywords matching this expression."),
		text("keyword_exclude", "Drop keywords matching this expression."),
	}
}

func titleTextFilters() []Field {
	return []Field{
		text("title_include", "Only keep pages whose title matches this expression."),
		text("title_exclude", "Drop pages whose title matches this expression."),
	}
}

func domainCapabilities() []Capability {
	return []Capability{
		{
			Name:        "get_domains_overview",
			Description: "Get an overview of a domain: metrics, positions breakdown, best pages and keywords.",
			Action:      "getting domains overview",
			Route:       "/domains/overview",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainInput(),
				domainMode(),
				required(texts("requested_data", "Specific data blocks to request.")),
				text("lang", "Language of the results."),
			),
		},
		{
			Name:        "get_domains_positions",
			Description: "Get the keywords a domain ranks for and its positions.",
			Action:      "getting domains positions",
			Route:       "/domains/positions",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainFilters(),
				domainInput(),
				ranges("traffic", "position", "keyword_word_count"),
				text("serp_date_min", "Oldest SERP date."),
				text("serp_date_max", "Newest SERP date."),
				keywordTextFilters(),
				titleTextFilters(),
			),
		},
		{
			Name:        "get_domains_top_pages",
			Description: "Get the pages of a domain that bring the most traffic.",
			Action:      "getting domains top pages",
			Route:       "/domains/topPages",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainInput(),
				domainMode(),
				lineCount(), orderBy(), order(),
				ranges("known_versions"),
				pageMetricRanges(),
			),
		},
		{
			Name:        "get_domains_history_positions",
			Description: "Get the position history of a domain between two dates.",
			Action:      "getting domains history positions",
			Route:       "/domains/history",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainFilters(),
				domainInput(),
				required(text("date_from", "Start date.")),
				required(text("date_to", "End date.")),
				ranges("word_count", "best_position", "worst_position"),
				text("first_time_seen_min", "Earliest first appearance."),
				text("first_time_seen_max", "Latest first appearance."),
				text("last_time_seen_min", "Earliest last appearance."),
				text("last_time_seen_max", "Latest last appearance."),
				ranges("most_recent_position", "subdomain_count", "page_count"),
				flag("still_there", "Only keep keywords still ranking."),
				keywordTextFilters(),
			),
		},
		{
			Name:        "get_domains_history_pages",
			Description: "Get the page history of a domain between two dates.",
			Action:      "getting domains history pages",
			Route:       "/domains/pagesHistory",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainInput(),
				domainMode(),
				required(text("date_from", "Start date.")),
				required(text("date_to", "End date.")),
				lineCount(), orderBy(), order(),
				ranges("known_versions"),
				pageMetricRanges(),
			),
		},
		{
			Name:        "get_page_best_keywords",
			Description: "Get the best keywords of one or more pages.",
			Action:      "getting page best keywords",
			Route:       "/domains/pageBestKeywords",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				required(texts("input", "Page URLs.")),
				lineCount(),
				number("strategy", "Keyword selection strategy."),
			),
		},
		{
			Name:        "get_domains_keywords",
			Description: "Get the positions of a domain on a given list of keywords.",
			Action:      "getting domains keywords",
			Route:       "/domains/keywords",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainFilters(),
				domainInput(),
				required(texts("keywords", "Keywords to check.")),
				ranges("position", "traffic", "title_word_count"),
				text("serp_date_min", "Oldest SERP date."),
				text("serp_date_max", "Newest SERP date."),
				keywordTextFilters(),
				titleTextFilters(),
			),
		},
		{
			Name:        "get_domains_bulk",
			Description: "Get metrics for a list of domains.",
			Action:      "getting domains bulk",
			Route:       "/domains/bulk",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				required(texts("inputs", "Domains to look up.")),
				domainMode(),
				lineCount(), orderBy(), order(),
				pageMetricRanges(),
			),
		},
		{
			Name:        "get_domains_competitors",
			Description: "Get the organic competitors of a domain.",
			Action:      "getting domains competitors",
			Route:       "/domains/siteCompetitors",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainInput(),
				domainMode(),
				lineCount(),
				pageToken(),
			),
		},
		{
			Name:        "get_domains_competitors_keywords_diff",
			Description: "Compare the keywords of a domain with those of its competitors.",
			Action:      "getting domains competitors keywords diff",
			Route:       "/domains/siteCompetitors/keywordsDiff",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainFilters(),
				domainInput(),
				texts("competitors", "Competitor domains."),
				flag("exclusive", "Keywords only the domain ranks for."),
				flag("missing", "Keywords only competitors rank for."),
				flag("besting", "Keywords where the domain outranks competitors."),
				flag("bested", "Keywords where competitors outrank the domain."),
				texts("acceptedTypes", "Comparison types to keep."),
				pageNumber(),
				ranges("best_competitor_traffic"),
				keepNA("best_competitor_traffic"),
				ranges("best_reference_traffic"),
				keepNA("best_reference_traffic"),
				ranges("best_reference_position", "competitors_positions",
					"unique_competitors_count", "keyword_word_count"),
				keywordTextFilters(),
				keepNA("volume", "cpc", "competition", "kgr", "allintitle"),
				ranges("google_indexed"),
				keepNA("google_indexed"),
			),
		},
		{
			Name:        "get_domains_competitors_best_pages",
			Description: "Get the best pages of the competitors of a domain.",
			Action:      "getting domains competitors best pages",
			Route:       "/domains/siteCompetitors/bestPages",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainInput(),
				texts("competitors", "Competitor domains."),
				domainMode(),
				lineCount(),
				pageToken(),
				orderBy(),
				ranges("total_traffic"),
				keepNA("total_traffic"),
				ranges("positions", "keywords", "exclusive_keywords",
					"besting_keywords", "bested_keywords"),
			),
		},
		{
			Name:        "get_domains_competitors_keywords_best_pos",
			Description: "Get the best positions of competitors on a list of keywords.",
			Action:      "getting domains competitors keywords best pos",
			Route:       "/domains/siteCompetitors/keywordsBestPos",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainFilters(),
				required(texts("competitors", "Competitor domains.")),
				required(texts("keywords", "Keywords to check.")),
				ranges("best_competitor_traffic"),
				keepNA("best_competitor_traffic"),
				ranges("best_competitor_position", "competitors_positions",
					"unique_competitors_count", "keyword_word_count"),
				keywordTextFilters(),
				keepNA("volume", "cpc", "competition", "kgr", "allintitle"),
			),
		},
		{
			Name:        "get_domains_visibility_trends",
			Description: "Get the visibility index trends of one or more domains.",
			Action:      "getting domains visibility trends",
			Route:       "/domains/history/visibilityTrends",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				required(texts("input", "Domains to compare.")),
				domainMode(),
				text("type", "Trend type."),
			),
		},
		{
			Name:        "get_domains_expired",
			Description: "Search expired domains that still have SEO value.",
			Action:      "getting domains expired",
			Route:       "/domains/expired",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				seedKeyword(),
				lineCount(),
				pageToken(),
				orderBy(),
				order(),
				ranges(
					"total_pages", "total_domains", "referring_domains",
					"total_keywords", "total_traffic",
					"total_top_100_positions", "total_top_50_positions",
					"total_top_10_positions", "total_top_3_positions",
					"total_top_100_traffic", "total_top_50_traffic",
					"total_top_10_traffic", "total_top_3_traffic",
					"matching_keywords", "matching_pages", "matching_traffic",
					"matching_most_recent_position",
					"matching_top_100_positions", "matching_top_50_positions",
					"matching_top_10_positions", "matching_top_3_positions",
					"first_time_available", "last_time_available",
					"first_seen", "last_seen",
					"fb_comments", "fb_shares", "pinterest_pins",
				),
				text("root_domain_include", "Only keep root domains matching this expression."),
				text("root_domain_exclude", "Drop root domains matching this expression."),
			),
		},
		{
			Name:        "get_domains_expired_reveal",
			Description: "Reveal the names of expired domains found by get_domains_expired.",
			Action:      "getting domains expired reveal",
			Route:       "/domains/expired/reveal",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(required(numbers("root_domain_keys", "Keys of the domains to reveal."))),
		},
		{
			Name:        "get_domains_gmb_backlinks",
			Description: "Get Google Business Profile listings linking to a domain.",
			Action:      "getting domains gmb backlinks",
			Route:       "/domains/gmbBacklinks",
			Verb:        haloscan.VerbPost,
			Schema: schemaOf(
				domainInput(),
				domainMode(),
				lineCount(),
				pageToken(),
				orderBy(),
				order(),
				ranges("rating_count"),
				keepNA("rating_count"),
				ranges("rating_value"),
				keepNA("rating_value"),
				ranges("latitude"),
				keepNA("latitude"),
				ranges("longitude"),
				keepNA("longitude"),
				text("categories_include", "Only keep listings in matching categories."),
				text("categories_exclude", "Drop listings in matching categories."),
				flag("is_claimed", "Only keep claimed listings."),
			),
		},
		{
			Name:        "get_domains_gmb_backlinks_map",
			Description: "Get the map coordinates of Google Business Profile listings linking to a domain.",
			Action:      "getting domains gmb backlinks map",
			Route:       "/domains/gmbBacklinks/map",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(domainInput(), domainMode()),
		},
		{
			Name:        "get_domains_gmb_backlinks_categories",
			Description: "Get the categories of Google Business Profile listings linking to a domain.",
			Action:      "getting domains gmb backlinks categories",
			Route:       "/domains/gmbBacklinks/categories",
			Verb:        haloscan.VerbPost,
			Schema:      schemaOf(domainInput(), domainMode()),
		},
	}
}
