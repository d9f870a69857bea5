package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// FormatCatalog lists the work types of c.
func FormatCatalog(c *catalog.Catalog) string {
	ids := c.WorkTypes()
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		caps, _ := domain.Classify(id)
		specs, _ := c.FieldSpecs(id)
		rows = append(rows, []string{
			string(id),
			WorkTypeBadge(id),
			string(caps.Unit),
			fmt.Sprintf("%d", len(specs)),
		})
	}
	return Header(c.Name()+" catalog") + "\n" +
		RenderTable([]string{"ID", "TITLE", "UNIT", "FIELDS"}, rows)
}

// FormatFieldSpecs renders the fields of one work type in c.
func FormatFieldSpecs(c *catalog.Catalog, id domain.WorkTypeID) (string, error) {
	specs, err := c.FieldSpecs(id)
	if err != nil {
		return "", err
	}
	header, err := c.Header(id)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(specs))
	for _, f := range specs {
		values := strings.Join(f.Options, " | ")
		if f.IsList() {
			values = string(f.List) + " entries"
		}
		when := ""
		if f.Condition != nil {
			when = fmt.Sprintf("%s = %s", f.Condition.Field, f.Condition.Value)
		}
		rows = append(rows, []string{f.Name, f.Label, string(f.Kind), values, Dim(when)})
	}
	return Header(header) + "\n" +
		RenderTable([]string{"FIELD", "LABEL", "KIND", "VALUES", "SHOWN WHEN"}, rows), nil
}
