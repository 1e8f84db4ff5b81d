package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

// scoreBands is the 10-tier ladder applied when an actual credit score is
// available: fixed 50-point bands from 900 down, everything below 500 is D.
var scoreBands = []struct {
	min   int
	grade domain.CreditGrade
}{
	{900, domain.GradeAAA},
	{850, domain.GradeAA},
	{800, domain.GradeA},
	{750, domain.GradeBBB},
	{700, domain.GradeBB},
	{650, domain.GradeB},
	{600, domain.GradeCCC},
	{550, domain.GradeCC},
	{500, domain.GradeC},
}

// dtiBands is the 8-tier fallback ladder estimated from DTI alone. A user
// without a score never reaches AAA or D; the ratio alone is not evidence
// enough for either extreme.
var dtiBands = []struct {
	below int64
	grade domain.CreditGrade
}{
	{20, domain.GradeAA},
	{30, domain.GradeA},
	{40, domain.GradeBBB},
	{50, domain.GradeBB},
	{60, domain.GradeB},
	{70, domain.GradeCCC},
	{80, domain.GradeCC},
}

// EstimateCreditGrade maps a credit score to a grade when one is supplied,
// otherwise estimates the grade from the DTI ratio.
func EstimateCreditGrade(creditScore *int, dti decimal.Decimal) domain.CreditGrade {
	if creditScore != nil {
		for _, band := range scoreBands {
			if *creditScore >= band.min {
				return band.grade
			}
		}
		return domain.GradeD
	}
	for _, band := range dtiBands {
		if dti.LessThan(decimal.NewFromInt(band.below)) {
			return band.grade
		}
	}
	return domain.GradeC
}
