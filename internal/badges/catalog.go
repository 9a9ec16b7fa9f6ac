package badges

import "github.com/limbo/grindlog/pkg/entity"

// DefaultCatalog is the badge set seeded into an empty catalog.
func DefaultCatalog() []entity.Badge {
	return []entity.Badge{
		{
			ID:           "first-session",
			Name:         "첫 훈련",
			Description:  "첫 번째 훈련 세션을 완료했습니다",
			Image:        "/badges/first-session.png",
			Category:     CategoryAchievement,
			Requirements: "첫 번째 훈련 세션 완료",
		},
		{
			ID:           "five-sessions",
			Name:         "5회 달성",
			Description:  "5개의 훈련 세션을 완료했습니다",
			Image:        "/badges/five-sessions.png",
			Category:     CategoryAchievement,
			Requirements: "5개의 훈련 세션 완료",
		},
		{
			ID:           "ten-sessions",
			Name:         "10회 달성",
			Description:  "10개의 훈련 세션을 완료했습니다",
			Image:        "/badges/ten-sessions.png",
			Category:     CategoryAchievement,
			Requirements: "10개의 훈련 세션 완료",
		},
		{
			ID:           "twenty-sessions",
			Name:         "20회 달성",
			Description:  "20개의 훈련 세션을 완료했습니다",
			Image:        "/badges/twenty-sessions.png",
			Category:     CategoryAchievement,
			Requirements: "20개의 훈련 세션 완료",
		},
		{
			ID:           "fifty-sessions",
			Name:         "50회 달성",
			Description:  "50개의 훈련 세션을 완료했습니다",
			Image:        "/badges/fifty-sessions.png",
			Category:     CategoryAchievement,
			Requirements: "50개의 훈련 세션 완료",
		},
		{
			ID:           "streak-3",
			Name:         "3일 연속",
			Description:  "3일 연속으로 훈련을 완료했습니다",
			Image:        "/badges/streak-3.png",
			Category:     CategoryStreak,
			Requirements: "3일 연속 훈련 완료",
		},
		{
			ID:           "streak-7",
			Name:         "7일 연속",
			Description:  "7일 연속으로 훈련을 완료했습니다",
			Image:        "/badges/streak-7.png",
			Category:     CategoryStreak,
			Requirements: "7일 연속 훈련 완료",
		},
		{
			ID:           "streak-14",
			Name:         "14일 연속",
			Description:  "14일 연속으로 훈련을 완료했습니다",
			Image:        "/badges/streak-14.png",
			Category:     CategoryStreak,
			Requirements: "14일 연속 훈련 완료",
		},
		{
			ID:           "streak-30",
			Name:         "30일 연속",
			Description:  "30일 연속으로 훈련을 완료했습니다",
			Image:        "/badges/streak-30.png",
			Category:     CategoryStreak,
			Requirements: "30일 연속 훈련 완료",
		},
		{
			ID:           "hours-5",
			Name:         "5시간 달성",
			Description:  "총 5시간의 훈련을 완료했습니다",
			Image:        "/badges/hours-5.png",
			Category:     CategoryHours,
			Requirements: "총 5시간 훈련 완료",
		},
		{
			ID:           "hours-10",
			Name:         "10시간 달성",
			Description:  "총 10시간의 훈련을 완료했습니다",
			Image:        "/badges/hours-10.png",
			Category:     CategoryHours,
			Requirements: "총 10시간 훈련 완료",
		},
		{
			ID:           "hours-20",
			Name:         "20시간 달성",
			Description:  "총 20시간의 훈련을 완료했습니다",
			Image:        "/badges/hours-20.png",
			Category:     CategoryHours,
			Requirements: "총 20시간 훈련 완료",
		},
		{
			ID:           "hours-50",
			Name:         "50시간 달성",
			Description:  "총 50시간의 훈련을 완료했습니다",
			Image:        "/badges/hours-50.png",
			Category:     CategoryHours,
			Requirements: "총 50시간 훈련 완료",
		},
		{
			ID:           "perfect-week",
			Name:         "완벽한 한 주",
			Description:  "한 주 동안 매일 훈련을 완료했습니다",
			Image:        "/badges/perfect-week.png",
			Category:     CategoryChallenge,
			Requirements: "한 주 동안 매일 훈련 완료",
		},
		{
			ID:           "early-bird",
			Name:         "얼리버드",
			Description:  "오전 5시에서 8시 사이에 5번 이상 훈련했습니다",
			Image:        "/badges/early-bird.png",
			Category:     CategoryChallenge,
			Requirements: "오전 5시~8시 사이에 5번 이상 훈련",
		},
		{
			ID:           "night-owl",
			Name:         "나이트 오울",
			Description:  "오후 10시에서 오전 1시 사이에 5번 이상 훈련했습니다",
			Image:        "/badges/night-owl.png",
			Category:     CategoryChallenge,
			Requirements: "오후 10시~오전 1시 사이에 5번 이상 훈련",
		},
		{
			ID:           "weekend-warrior",
			Name:         "주말 워리어",
			Description:  "주말에 8번 이상 훈련했습니다",
			Image:        "/badges/weekend-warrior.png",
			Category:     CategoryChallenge,
			Requirements: "주말에 8번 이상 훈련",
		},
	}
}
