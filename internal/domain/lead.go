package domain

// Lead is one row of the lead source: the business a landing page is
// generated for. Slug doubles as the output filename stem.
type Lead struct {
	Slug         string
	BusinessName string
	City         string
	Service      string
	PainPoint    string
	Offer        string
}
