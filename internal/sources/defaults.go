package sources

import "github.com/nyayalegal/nyaya/internal/models"

// defaultSources is the built-in government portal map. Order matters: the
// fusion engine tries the first entries of each list, so the most
// authoritative portal for a topic comes first.
func defaultSources() map[models.Topic][]models.Source {
	return map[models.Topic][]models.Source{
		models.TopicRTI: {
			{
				URL:   "https://rtionline.gov.in/",
				Label: "RTI Online Portal — Official Portal (NIC / DoPT)",
			},
			{
				URL:   "https://cic.gov.in/",
				Label: "Central Information Commission (CIC) — Official Portal",
			},
			{
				URL:   "https://doj.gov.in/right-to-information",
				Label: "Department of Justice — Right to Information",
			},
			{
				URL:   "https://www.indiacode.nic.in/handle/123456789/1879",
				Label: "India Code — Right to Information Act 2005 (Official Legislation Repository)",
			},
		},
		models.TopicDomesticViolence: {
			{
				URL:   "https://www.indiacode.nic.in/handle/123456789/15436",
				Label: "India Code — Protection of Women from Domestic Violence Act 2005",
			},
			{
				URL:   "https://nalsa.gov.in/",
				Label: "National Legal Services Authority (NALSA) — Free Legal Aid",
			},
			{
				URL:   "https://cic.gov.in/",
				Label: "Central Information Commission — Legal Resources",
			},
		},
		models.TopicDivorce: {
			{
				URL:   "https://www.indiacode.nic.in/handle/123456789/2055",
				Label: "India Code — Hindu Marriage Act 1955 (Official Legislation Repository)",
			},
			{
				URL:   "https://nalsa.gov.in/",
				Label: "National Legal Services Authority (NALSA) — Free Legal Aid for Family Disputes",
			},
			{
				URL:   "https://doj.gov.in/right-to-information",
				Label: "Department of Justice — Legal Resources",
			},
		},
	}
}
