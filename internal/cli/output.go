package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"sunshare/internal/cart"
	"sunshare/internal/models"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeProperties(w io.Writer, props []models.WireProperty) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tROI %\tPRICE\tFUNDED %\tCAPACITY kW")
	for _, p := range props {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Location,
			number(p.ROI), number(p.Price),
			strconv.FormatFloat(p.FundedPercentage, 'f', -1, 64),
			number(p.Capacity),
		)
	}
	return tw.Flush()
}

func writeCart(w io.Writer, summary cart.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tQTY\tUNIT\tSUBTOTAL")
	for _, item := range summary.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.2f\n", item.ID, item.Title, item.Qty, number(item.Price), item.Subtotal())
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%.2f\n", summary.Total)
	return tw.Flush()
}

func number(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
