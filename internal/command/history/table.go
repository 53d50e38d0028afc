// Package history provides CLI commands definitions and execution logic.

package history

import (
	"io"
	"outcome-service/internal/storage/v1/models"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

var header = []string{
	"Conversion ID",
	"File Name",
	"Status",
	"Entries",
	"Skip Validation",
	"Error",
	"Created At",
}

func renderConversions(out io.Writer, conversions []*models.Conversion) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	for _, c := range conversions {
		table.Append([]string{
			c.ID,
			c.FileName,
			c.Status,
			strconv.Itoa(c.EntryCount),
			strconv.FormatBool(c.SkipValidation),
			c.Error,
			c.CreatedAt.Format(time.RFC3339),
		})
	}
	table.Render()
}
