package types

// SalaryResult is the output of the salary outlook stage.
type SalaryResult struct {
	Occupation     string  `json:"occupation"`
	SOCCode        string  `json:"soc_code"`
	MedianSalary   float64 `json:"median_salary"`
	RegionalSalary float64 `json:"regional_salary"`
	GrowthRate     string  `json:"growth_rate"`
	Outlook        string  `json:"outlook"`
	ROIYears       float64 `json:"roi_years"`
}
