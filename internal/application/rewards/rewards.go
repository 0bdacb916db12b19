package rewards

import "github.com/tu-usuario/cafe-sang/internal/domain/entity"

// catalog tabla estática de recompensas del programa de fidelidad.
var catalog = []entity.Reward{
	{
		ID:             "1",
		Name:           "Cà phê đen miễn phí",
		NameEn:         "Free Black Coffee",
		Description:    "Một ly cà phê đen bất kỳ",
		DescriptionEn:  "Any black coffee drink",
		PointsRequired: 100,
		Image:          "https://images.pexels.com/photos/312418/pexels-photo-312418.jpeg",
		Available:      true,
	},
	{
		ID:             "2",
		Name:           "Bánh ngọt miễn phí",
		NameEn:         "Free Pastry",
		Description:    "Một món bánh ngọt bất kỳ",
		DescriptionEn:  "Any pastry item",
		PointsRequired: 200,
		Image:          "https://images.pexels.com/photos/2135/food-france-morning-breakfast.jpg",
		Available:      true,
	},
	{
		ID:             "3",
		Name:           "Combo đặc biệt",
		NameEn:         "Special Combo",
		Description:    "Cà phê + bánh ngọt",
		DescriptionEn:  "Coffee + pastry combo",
		PointsRequired: 300,
		Image:          "https://images.pexels.com/photos/1695052/pexels-photo-1695052.jpeg",
		Available:      true,
	},
}

func findReward(id string) (entity.Reward, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Reward{}, false
}
