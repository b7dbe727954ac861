package assistant

// Tip is a short explainer shown alongside the calculator.
type Tip struct {
	Title   string
	Content string

	// Keyword lets the offline assistant match a question to the tip.
	Keyword string
}

// Tips are the built-in educational notes.
var Tips = []Tip{
	{
		Title:   "What is PAYE?",
		Content: "Pay As You Earn (PAYE) is how Personal Income Tax is collected from employees: the employer deducts it from salary each month and remits it.",
		Keyword: "paye",
	},
	{
		Title:   "Consolidated Relief Allowance (CRA)",
		Content: "CRA is a tax-free allowance for every taxpayer: the higher of ₦200,000 or 1% of gross income, plus 20% of gross income.",
		Keyword: "allowance",
	},
	{
		Title:   "Allowable Deductions",
		Content: "Contributions to your pension fund, the National Health Insurance Scheme and the National Housing Fund are deducted before tax is calculated.",
		Keyword: "deduction",
	},
	{
		Title:   "Tax Residency",
		Content: "You are liable to tax in Nigeria if you live in the country for 183 days or more in any 12-month period.",
		Keyword: "residen",
	},
}
