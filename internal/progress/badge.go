package progress

// Badge is an achievement awarded at most once per session.
type Badge string

const (
	BadgeQuizMaster      Badge = "QUIZ_MASTER"
	BadgeCuriousExplorer Badge = "CURIOUS_EXPLORER"
)

// AllBadges returns all badges in display order.
func AllBadges() []Badge {
	return []Badge{BadgeQuizMaster, BadgeCuriousExplorer}
}

// DisplayName returns the label shown to the learner.
func (b Badge) DisplayName() string {
	switch b {
	case BadgeQuizMaster:
		return "Mestre del Qüestionari!"
	case BadgeCuriousExplorer:
		return "Explorador Curiós!"
	default:
		return string(b)
	}
}

// Icon returns the display icon for the badge.
func (b Badge) Icon() string {
	switch b {
	case BadgeQuizMaster:
		return "🏆"
	case BadgeCuriousExplorer:
		return "🔭"
	default:
		return "✦"
	}
}
