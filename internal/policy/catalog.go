package policy

import (
	"github.com/dohyun-im/saegil/internal/domain"
)

// PlanCopy is the localized presentation text for one program. It is kept
// apart from the numeric rules so the eligibility logic stays testable
// without asserting on copy.
type PlanCopy struct {
	Name                  string
	Description           string
	EligibilityConditions []string
	RequiredDocuments     []string
	Pros                  []string
	Cons                  []string
}

// Catalog maps a plan type to its presentation copy.
type Catalog map[domain.PlanType]PlanCopy

// DefaultCatalog returns the built-in Korean program copy.
func DefaultCatalog() Catalog {
	return Catalog{
		domain.PlanPreWorkout: {
			Name:        "프리워크아웃 (사전채무조정)",
			Description: "연체 초기 단계에서 신용회복위원회가 이자율과 월 상환액을 조정해 주는 제도입니다.",
			EligibilityConditions: []string{
				"총 채무 5천만원 이상 10억원 이하",
				"고정 소득 보유",
				"연체 90일 미만",
			},
			RequiredDocuments: []string{
				"소득증빙서류 (재직증명서, 급여명세서)",
				"부채증명서",
				"신분증",
			},
			Pros: []string{
				"월 상환액 35% 경감",
				"연체 정보 등록 전 신청 가능",
				"신용등급 하락 최소화",
			},
			Cons: []string{
				"원금 감면 없음",
				"조정 기간 중 신규 대출 제한",
			},
		},
		domain.PlanFreshStartFund: {
			Name:        "새출발기금",
			Description: "한국자산관리공사가 부실 채권을 매입하여 원금의 최대 60%를 감면하는 채무조정 프로그램입니다.",
			EligibilityConditions: []string{
				"총 채무 5천만원 이상 8억원 이하",
				"월 소득 350만원 이하",
				"90일 이상 연체 또는 부실 우려 차주",
			},
			RequiredDocuments: []string{
				"소득금액증명원",
				"부채증명서",
				"재산 내역 증빙",
			},
			Pros: []string{
				"원금 최대 60% 감면",
				"최장 8년 분할 상환",
				"이자 전액 면제",
			},
			Cons: []string{
				"신용정보 공공기록 등재",
				"재산 초과분은 감면 제외",
			},
		},
		domain.PlanIndividualRecovery: {
			Name:        "개인회생",
			Description: "법원이 강제 조정하는 제도로, 소득이 있는 채무자가 5년간 일부만 변제하면 잔여 채무가 면책됩니다.",
			EligibilityConditions: []string{
				"담보채무 15억원, 무담보채무 10억원 이하",
				"계속적·반복적 소득 보유",
			},
			RequiredDocuments: []string{
				"개인회생 신청서",
				"채권자 목록",
				"소득증빙 및 재산목록",
			},
			Pros: []string{
				"원금 최대 70% 감면",
				"강제집행·추심 중지",
				"사채 등 사적 채무 포함 가능",
			},
			Cons: []string{
				"5년간 법원 인가 변제계획 이행",
				"공공기록 등재로 금융거래 제한",
			},
		},
		domain.PlanPersonalBankruptcy: {
			Name:        "개인파산",
			Description: "상환 능력이 없는 채무자의 채무 전액을 법원이 면책하는 최후의 제도입니다.",
			EligibilityConditions: []string{
				"지급불능 상태 (상환 능력 상실)",
				"총 채무 1천만원 초과",
			},
			RequiredDocuments: []string{
				"파산 및 면책 신청서",
				"채권자 목록",
				"재산목록 및 생활상황 진술서",
			},
			Pros: []string{
				"채무 전액 면책",
				"추심 즉시 중단",
			},
			Cons: []string{
				"파산자 신분상 불이익 (일부 직업 제한)",
				"보유 재산 환가·배당",
				"5년간 금융거래 사실상 불가",
			},
		},
		domain.PlanCreditAdjustment: {
			Name:        "개인워크아웃 (신용회복위원회 채무조정)",
			Description: "신용회복위원회가 연체 채무의 상환 기간과 월 상환액을 조정하는 제도입니다.",
			EligibilityConditions: []string{
				"총 채무 1천만원 이상 5억원 이하",
				"연체 90일 이상",
				"최저생계비 이상 소득 보유",
			},
			RequiredDocuments: []string{
				"소득증빙서류",
				"부채증명서",
				"주민등록등본",
			},
			Pros: []string{
				"월 상환액 25% 경감",
				"연체이자 전액 감면",
				"추심 중단",
			},
			Cons: []string{
				"원금 감면은 상각채권에 한정",
				"이행 완료까지 신용카드 사용 제한",
			},
		},
	}
}
