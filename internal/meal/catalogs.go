package meal

import "fmt"

// RecoveryCatalog is the post-surgery catalog used for the meal_plans sample:
// five liquid meals, four soft and four regular, with recovery tags.
func RecoveryCatalog() Catalog {
	return Catalog{
		PhaseLiquid: {
			recoveryMeal("l-br", "아침: 쌀 미음", PhaseLiquid, Breakfast, 70, 1, 15, 0),
			recoveryMeal("l-lu", "점심: 맑은 채소 스프", PhaseLiquid, Lunch, 50, 1, 12, 0),
			recoveryMeal("l-di", "저녁: 닭고기 육수", PhaseLiquid, Dinner, 60, 3, 5, 1),
			recoveryMeal("l-sn1", "간식: 젤리 디저트", PhaseLiquid, Snack, 100, 2, 20, 0),
			recoveryMeal("l-sn2", "간식: 과일 주스", PhaseLiquid, Snack, 80, 0, 20, 0),
		},
		PhaseSoft: {
			recoveryMeal("s-br", "아침: 계란찜과 흰죽", PhaseSoft, Breakfast, 250, 12, 40, 5),
			recoveryMeal("s-lu", "점심: 두부 조림과 무른 밥", PhaseSoft, Lunch, 350, 18, 50, 8),
			recoveryMeal("s-di", "저녁: 흰살 생선 구이와 야채죽", PhaseSoft, Dinner, 300, 20, 45, 6),
			recoveryMeal("s-sn", "간식: 요거트", PhaseSoft, Snack, 120, 6, 15, 4),
		},
		PhaseRegular: {
			recoveryMeal("r-br", "아침: 잡곡밥과 고등어구이", PhaseRegular, Breakfast, 500, 25, 60, 15),
			recoveryMeal("r-lu", "점심: 비빔밥", PhaseRegular, Lunch, 600, 20, 80, 12),
			recoveryMeal("r-di", "저녁: 불고기와 쌈채소", PhaseRegular, Dinner, 550, 30, 50, 20),
			recoveryMeal("r-sn", "간식: 견과류", PhaseRegular, Snack, 150, 5, 10, 12),
		},
	}
}

// SampleCatalog is the smaller three-meals-a-day catalog used for the upsert sample.
func SampleCatalog() Catalog {
	return Catalog{
		PhaseLiquid: {
			sampleMeal(1, "미음", PhaseLiquid, Breakfast, 150, 5, 30, 2),
			sampleMeal(2, "채수", PhaseLiquid, Lunch, 120, 2, 25, 1),
			sampleMeal(3, "단호박 미음", PhaseLiquid, Dinner, 180, 4, 35, 2),
		},
		PhaseSoft: {
			sampleMeal(4, "흰죽", PhaseSoft, Breakfast, 250, 8, 50, 3),
			sampleMeal(5, "계란찜과 무른 밥", PhaseSoft, Lunch, 350, 15, 60, 10),
			sampleMeal(6, "두부 조림과 야채죽", PhaseSoft, Dinner, 300, 12, 55, 6),
		},
		PhaseRegular: {
			sampleMeal(7, "잡곡밥과 고등어구이", PhaseRegular, Breakfast, 500, 25, 70, 15),
			sampleMeal(8, "소고기 미역국과 밥", PhaseRegular, Lunch, 600, 30, 80, 20),
			sampleMeal(9, "닭가슴살 샐러드", PhaseRegular, Dinner, 450, 35, 40, 12),
		},
	}
}

func recoveryMeal(id, name string, phase Phase, at Time, calories, protein, carbs, fat float64) Template {
	tags := []string{"영양식", "회복식"}
	if phase == PhaseRegular {
		tags = []string{"일반식", "건강식"}
	}
	prepTime := 30
	if phase == PhaseLiquid {
		prepTime = 15
	}
	suitableFor := []string{}

	return Template{
		ID:       id,
		Name:     name,
		Tags:     tags,
		Phase:    phase,
		MealTime: at,
		PrepTime: prepTime,
		Nutrition: Nutrition{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		},
		Ingredients:  []string{"식재료 A", "식재료 B"},
		PortionSize:  "1인분",
		SuitableFor:  &suitableFor,
		Instructions: []string{"재료를 준비합니다.", "조리법에 따라 요리합니다.", "천천히 섭취합니다."},
	}
}

func sampleMeal(n int, name string, phase Phase, at Time, calories, protein, carbs, fat float64) Template {
	return Template{
		ID:       fmt.Sprintf("meal-%d", n),
		Name:     name,
		Phase:    phase,
		MealTime: at,
		Nutrition: Nutrition{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		},
		Ingredients:  []string{"식재료 1", "식재료 2"},
		Instructions: []string{"조리 단계 1", "조리 단계 2"},
		PrepTime:     15,
		PortionSize:  "1인분",
	}
}
