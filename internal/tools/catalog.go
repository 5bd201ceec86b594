package tools

import (
	"fmt"

	"github.com/occirank/Haloscan-mcp-server/internal/haloscan"
)

// Catalog returns every Haloscan capability in registration order.
// Each call returns fresh descriptors.
func Catalog() []Capability {
	caps := []Capability{
		{
			Name:        "get_user_credit",
			Description: "Get the remaining credits of the Haloscan account.",
			Action:      "getting user credits",
			Route:       "/user/credit",
			Verb:        haloscan.VerbGet,
		},
	}
	caps = append(caps, keywordCapabilities()...)
	caps = append(caps, domainCapabilities()...)
	return caps
}

// Field constructors used by the catalog tables.

func text(name, desc string) Field {
	return Field{Name: name, Type: TypeString, Description: desc}
}

func number(name, desc string) Field {
	return Field{Name: name, Type: TypeNumber, Description: desc}
}

func flag(name, desc string) Field {
	return Field{Name: name, Type: TypeBoolean, Description: desc}
}

func texts(name, desc string) Field {
	return Field{Name: name, Type: TypeStringArray, Description: desc}
}

func numbers(name, desc string) Field {
	return Field{Name: name, Type: TypeNumberArray, Description: desc}
}

func required(f Field) Field {
	f.Required = true
	return f
}

func atLeast(min float64) *float64 { return &min }

// ranges declares <name>_min and <name>_max numeric filters.
func ranges(names ...string) []Field {
	out := make([]Field, 0, 2*len(names))
	for _, n := range names {
		out = append(out,
			number(n+"_min", "Minimum "+n+"."),
			number(n+"_max", "Maximum "+n+"."),
		)
	}
	return out
}

// keepNA declares <name>_keep_na flags.
func keepNA(names ...string) []Field {
	out := make([]Field, 0, len(names))
	for _, n := range names {
		out = append(out, flag(n+"_keep_na", "Keep rows where "+n+" is unknown."))
	}
	return out
}

func lineCount() Field {
	return Field{
		Name:        "lineCount",
		Type:        TypeInteger,
		Minimum:     atLeast(1),
		Description: "Max number of returned results.",
	}
}

func orderBy() Field {
	return text("order_by", "Field used for sorting results. Default sorts by descending volume.")
}

func order() Field {
	return Field{
		Name:        "order",
		Type:        TypeString,
		Enum:        []string{"asc", "desc"},
		Description: "Whether the results are sorted in ascending or descending order.",
	}
}

func pageNumber() Field {
	return Field{Name: "page", Type: TypeInteger, Minimum: atLeast(1), Description: "Result page, starting at 1."}
}

func pageToken() Field {
	return text("page", "Result page.")
}

func seedKeyword() Field {
	return text("keyword", "Seed keyword.")
}

func domainInput() Field {
	return required(text("input", "Domain, root domain or URL to analyse."))
}

func domainMode() Field {
	return text("mode", "How input is interpreted: auto, root, domain or url.")
}

func exactMatch() Field {
	return flag("exact_match", "Only return exact matches of the seed.")
}

// keywordFilters is the filter block shared by keyword exploration endpoints.
func keywordFilters() []Field {
	return fieldList(
		lineCount(), orderBy(), order(),
		ranges("volume", "cpc", "competition", "kgr", "kvi"),
		keepNA("kvi"),
		ranges("allintitle", "word_count"),
		text("include", "Only keep keywords matching this expression."),
		text("exclude", "Drop keywords matching this expression."),
	)
}

// domainFilters is the filter block shared by domain endpoints.
func domainFilters() []Field {
	return fieldList(
		domainMode(), lineCount(), orderBy(), order(),
		ranges("volume", "cpc", "competition", "kgr", "kvi"),
		keepNA("kvi"),
		ranges("allintitle"),
	)
}

// fieldList flattens Field and []Field parts in order.
func fieldList(parts ...any) []Field {
	var out []Field
	for _, p := range parts {
		switch v := p.(type) {
		case Field:
			out = append(out, v)
		case []Field:
			out = append(out, v...)
		default:
			panic(fmt.Sprintf("tools: unexpected schema part %T", p))
		}
	}
	return out
}

func schemaOf(parts ...any) Schema { return Schema(fieldList(parts...)) }
