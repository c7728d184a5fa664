// Package scheme holds the government scheme catalog served by the
// Subsidy Sentinel feed and its file loaders.
package scheme

import "krishisahay/entities"

// DefaultCatalog is shared by reference; callers must not mutate it.
var DefaultCatalog = []entities.Scheme{
	{
		ID:          "scheme-1",
		Name:        "PM-KISAN",
		Description: "Direct income support of ₹6,000 per year to farmer families",
		Eligibility: "All landholding farmer families",
		Benefit:     "₹6,000/year in 3 installments",
		Deadline:    "2024-03-31",
		ApplyURL:    "https://pmkisan.gov.in",
		Category:    "Income Support",
	},
	{
		ID:          "scheme-2",
		Name:        "PMFBY",
		Description: "Crop insurance scheme against natural calamities",
		Eligibility: "All farmers growing notified crops",
		Benefit:     "Insurance coverage up to sum insured",
		ApplyURL:    "https://pmfby.gov.in",
		Category:    "Insurance",
	},
	{
		ID:          "scheme-3",
		Name:        "Kisan Credit Card",
		Description: "Easy credit access for farming needs",
		Eligibility: "All farmers, sharecroppers, tenant farmers",
		Benefit:     "Credit limit up to ₹3 lakh at 4% interest",
		ApplyURL:    "https://www.nabard.org/content1.aspx?id=591",
		Category:    "Credit",
	},
}
