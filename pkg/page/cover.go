package page

const (
	CoverName   = "cover"
	SummaryName = "executive_summary"
)

// Cover returns the report cover page.
func Cover() *Layout {
	return NewLayout(CoverName, Portrait[0], Portrait[1]).
		Add(0.5, 0.70, "Health Care Benefits Strategy", Bold(24)).
		Add(0.5, 0.65, "2022 Survey Recreation", Bold(20)).
		Add(0.5, 0.55, "Key Charts and Tables Recreation", Italic(14)).
		Add(0.5, 0.45, "Original Survey by Keenan & Associates", Regular(12)).
		Add(0.5, 0.40, "Recreation using Go and gonum/plot", Italic(10)).
		Add(0.5, 0.25, "Generated Report", Regular(12))
}

// ExecutiveSummary returns the executive summary text page.
func ExecutiveSummary() *Text {
	return TextPage(SummaryName, "Executive Summary", summaryBody)
}

const summaryBody = `Health Care Benefits Strategy 2022 Survey - Key Findings Recreation

This report recreates key charts and tables from the Keenan & Associates Health Care Benefits Strategy 2022 Survey, providing insights into healthcare benefit trends across organizations.

Key Findings Include:

• Product Mix: PPO plans remain the most popular option at 78.5% adoption, while High Deductible Health Plans (HDHP) have significant presence at 67.8% of organizations.

• Funding Approaches: Self-funded plans dominate at 72.1% of organizations, reflecting a continued trend toward self-insurance for cost control and flexibility.

• Regional Cost Variations: Medical costs per employee per month (PEPM) vary significantly by region, with Bay Area showing highest costs at $758 and Central Valley the lowest at $548.

• Network Preferences: Regional PPO networks are preferred by 48.7% of self-funded organizations, followed by national PPO at 35.9%.

• Telemedicine Adoption: Strong adoption of telemedicine services at 89.3%, with teletherapy access at 67.4%, indicating accelerated digital health adoption.

• Union Representation: 41.3% of surveyed organizations have union representation, influencing benefit design and negotiation processes.

• Dental Benefits: Dental PPO (DPPO) plans are offered by 78.2% of organizations, while dental HMO options are available at 34.6%.

• Stop-Loss Coverage: Most common attachment points fall in the $150k-$199k range (28.4%) and $200k-$249k range (24.7%).

This recreation demonstrates the ability to transform survey data into clear, actionable visual insights for benefits strategy decision-making.`
