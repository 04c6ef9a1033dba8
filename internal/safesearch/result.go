package safesearch

import (
	"fmt"
	"io"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/olekukonko/tablewriter"

	"infer-google-vision-safe-search/internal/workflow"
)

// Output keys, in publication order. The trailing colon is part of each key.
const (
	KeyAdult    = "adult:"
	KeyMedical  = "medical:"
	KeySpoofed  = "spoofed:"
	KeyViolence = "violence:"
	KeyRacy     = "racy:"
)

// Keys returns the five output keys in publication order.
func Keys() []string {
	return []string{KeyAdult, KeyMedical, KeySpoofed, KeyViolence, KeyRacy}
}

// Result is the safe search classification of one image.
type Result struct {
	Adult    Likelihood
	Medical  Likelihood
	Spoofed  Likelihood
	Violence Likelihood
	Racy     Likelihood
}

func resultFromAnnotation(safe *visionpb.SafeSearchAnnotation) (Result, error) {
	codes := []struct {
		field string
		code  visionpb.Likelihood
	}{
		{"adult", safe.GetAdult()},
		{"medical", safe.GetMedical()},
		{"spoof", safe.GetSpoof()},
		{"violence", safe.GetViolence()},
		{"racy", safe.GetRacy()},
	}

	labels := make([]Likelihood, len(codes))
	for i, c := range codes {
		label, err := LikelihoodFromCode(int32(c.code))
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", c.field, err)
		}
		labels[i] = label
	}

	return Result{
		Adult:    labels[0],
		Medical:  labels[1],
		Spoofed:  labels[2],
		Violence: labels[3],
		Racy:     labels[4],
	}, nil
}

func (r Result) values() []Likelihood {
	return []Likelihood{r.Adult, r.Medical, r.Spoofed, r.Violence, r.Racy}
}

// Dict returns the result as an ordered output dict.
func (r Result) Dict() *workflow.DataDict {
	dict := workflow.NewDataDict()
	values := r.values()
	for i, key := range Keys() {
		dict.Set(key, values[i].String())
	}
	return dict
}

// WriteTable renders the Category/Likelihood table.
func (r Result) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Likelihood"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	values := r.values()
	for i, key := range Keys() {
		table.Append([]string{key, values[i].String()})
	}
	table.Render()
}
