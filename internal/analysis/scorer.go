// Package analysis implements the risk domain for Regula: scoring contract
// text against a fixed clause rule table, rendering the compliance report
// PDF, and delivering it over the configured mail relay.
package analysis

import "strings"

// Finding is a single named observation about the presence or absence of a
// contract clause category. Detail is the fixed sentence rendered to users
// and reports; findings are immutable once produced.
type Finding struct {
	Clause  string `json:"clause"`
	Present bool   `json:"present"`
	Detail  string `json:"detail"`
}

// RiskReport aggregates the risk score with its ordered findings. It is
// recomputed from the current contract text on every dashboard request and
// never persisted.
type RiskReport struct {
	Score    int       `json:"score"`
	Findings []Finding `json:"findings"`
}

// MaxScore is the sum of all rule weights. The score is never clamped, but
// under the current rule table it cannot exceed this bound; revisit it when
// adding rules.
const MaxScore = 80

// rule is one entry of the fixed scoring table. The weight applies when the
// needle is found, or when it is absent for scoreOnMissing rules. A finding
// is only emitted for outcomes that carry a detail sentence.
type rule struct {
	clause         string
	needle         string
	weight         int
	scoreOnMissing bool
	presentDetail  string
	missingDetail  string
}

var ruleTable = []rule{
	{
		clause:        "Termination",
		needle:        "termination",
		weight:        20,
		presentDetail: "Termination clause present",
		missingDetail: "Termination clause missing",
	},
	{
		clause:        "Liability",
		needle:        "liability",
		weight:        25,
		presentDetail: "Liability clause present",
		missingDetail: "Liability clause missing",
	},
	{
		clause:        "Indemnification",
		needle:        "indemn",
		weight:        20,
		presentDetail: "Indemnification clause present",
	},
	{
		clause:         "GDPR",
		needle:         "gdpr",
		weight:         15,
		scoreOnMissing: true,
		missingDetail:  "GDPR compliance missing",
	},
}

// Score evaluates the rule table against the given contract text. It is a
// pure function: identical text always yields an identical report, findings
// appear in rule-table order, and matching is case-insensitive. An empty
// string is valid input and scores 15 from the GDPR absence rule.
func Score(text string) RiskReport {
	lowered := strings.ToLower(text)

	report := RiskReport{Findings: make([]Finding, 0, len(ruleTable))}
	for _, r := range ruleTable {
		present := strings.Contains(lowered, r.needle)

		if present != r.scoreOnMissing {
			report.Score += r.weight
		}

		detail := r.missingDetail
		if present {
			detail = r.presentDetail
		}
		if detail != "" {
			report.Findings = append(report.Findings, Finding{
				Clause:  r.clause,
				Present: present,
				Detail:  detail,
			})
		}
	}

	return report
}
