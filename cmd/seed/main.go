package main

import (
	"context"
	"log"
	"sort"

	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/config"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/database"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

var recipes = []models.Recipe{
	// Italian
	{
		Name:        "Classic Margherita Pizza",
		Description: "Traditional Italian pizza with fresh mozzarella, tomatoes, and basil on a crispy crust.",
		Cuisine:     "Italian",
		Ingredients: models.StringArray{"pizza dough", "tomato sauce", "fresh mozzarella", "fresh basil", "olive oil", "garlic", "salt"},
		Instructions: models.StringArray{
			"Preheat oven to 475°F (245°C)",
			"Roll out pizza dough on a floured surface",
			"Spread tomato sauce evenly over the dough",
			"Add sliced fresh mozzarella",
			"Drizzle with olive oil and add minced garlic",
			"Bake for 12-15 minutes until crust is golden",
			"Top with fresh basil leaves and serve",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 12, Carbs: 35, Fat: 10, Fiber: 2},
		PrepTime:    20,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian"},
		ImageURL:    "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800",
		Substitutions: models.SubstitutionMap{
			"mozzarella":  {"vegan cheese", "nutritional yeast"},
			"pizza dough": {"cauliflower crust", "gluten-free dough"},
		},
	},
	{
		Name:        "Creamy Carbonara Pasta",
		Description: "Rich and creamy pasta with eggs, cheese, and crispy pancetta.",
		Cuisine:     "Italian",
		Ingredients: models.StringArray{"spaghetti", "eggs", "parmesan cheese", "pancetta", "black pepper", "garlic", "olive oil"},
		Instructions: models.StringArray{
			"Cook spaghetti according to package directions",
			"Fry pancetta until crispy, set aside",
			"Whisk eggs and grated parmesan in a bowl",
			"Sauté garlic in olive oil",
			"Toss hot pasta with egg mixture off heat",
			"Add pancetta and black pepper",
			"Serve immediately with extra parmesan",
		},
		Nutrition:   models.Nutrition{Calories: 520, Protein: 22, Carbs: 58, Fat: 20, Fiber: 3},
		PrepTime:    10,
		CookTime:    20,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=800",
	},
	{
		Name:        "Minestrone Soup",
		Description: "Hearty Italian vegetable soup with beans and pasta.",
		Cuisine:     "Italian",
		Ingredients: models.StringArray{"tomatoes", "kidney beans", "pasta", "carrots", "celery", "onion", "garlic", "vegetable broth", "zucchini", "spinach"},
		Instructions: models.StringArray{
			"Sauté onion, garlic, carrots, and celery",
			"Add diced tomatoes and vegetable broth",
			"Simmer for 20 minutes",
			"Add beans and pasta, cook until tender",
			"Stir in zucchini and spinach",
			"Season with salt, pepper, and Italian herbs",
			"Serve with crusty bread",
		},
		Nutrition:   models.Nutrition{Calories: 220, Protein: 10, Carbs: 38, Fat: 3, Fiber: 10},
		PrepTime:    15,
		CookTime:    35,
		Servings:    6,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Low-Calorie"},
		ImageURL:    "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800",
	},
	// Indian
	{
		Name:        "Butter Chicken (Murgh Makhani)",
		Description: "Creamy and flavorful Indian curry with tender chicken pieces.",
		Cuisine:     "Indian",
		Ingredients: models.StringArray{"chicken", "tomatoes", "butter", "cream", "yogurt", "ginger", "garlic", "garam masala", "turmeric", "cumin", "coriander", "chili powder"},
		Instructions: models.StringArray{
			"Marinate chicken in yogurt and spices for 2 hours",
			"Grill or pan-fry chicken until cooked",
			"Blend tomatoes into a smooth puree",
			"Melt butter and sauté ginger-garlic paste",
			"Add tomato puree and spices, simmer for 15 minutes",
			"Add cream and cooked chicken",
			"Simmer for 10 more minutes and serve with naan",
		},
		Nutrition:   models.Nutrition{Calories: 450, Protein: 32, Carbs: 12, Fat: 28, Fiber: 3},
		PrepTime:    30,
		CookTime:    40,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Gluten-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=800",
	},
	{
		Name:        "Chana Masala",
		Description: "Spicy and tangy chickpea curry, a popular North Indian dish.",
		Cuisine:     "Indian",
		Ingredients: models.StringArray{"chickpeas", "tomatoes", "onion", "ginger", "garlic", "cumin", "coriander", "turmeric", "garam masala", "amchur", "cilantro"},
		Instructions: models.StringArray{
			"Sauté onions until golden brown",
			"Add ginger-garlic paste and cook for 2 minutes",
			"Add spices and cook for 1 minute",
			"Add tomatoes and cook until soft",
			"Add chickpeas and water, simmer for 20 minutes",
			"Mash some chickpeas to thicken the gravy",
			"Garnish with cilantro and serve",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 12, Carbs: 42, Fat: 8, Fiber: 12},
		PrepTime:    15,
		CookTime:    30,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Gluten-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=800",
	},
	{
		Name:        "Vegetable Biryani",
		Description: "Fragrant rice dish layered with spiced vegetables and aromatic spices.",
		Cuisine:     "Indian",
		Ingredients: models.StringArray{"basmati rice", "mixed vegetables", "onion", "yogurt", "saffron", "biryani masala", "mint", "cilantro", "ghee", "cashews", "raisins"},
		Instructions: models.StringArray{
			"Soak rice for 30 minutes, then parboil",
			"Sauté onions until crispy, set aside",
			"Cook vegetables with biryani masala",
			"Layer rice and vegetable mixture in a pot",
			"Add saffron milk, mint, and cilantro",
			"Cover and cook on low heat for 25 minutes",
			"Garnish with fried onions, cashews, and raisins",
		},
		Nutrition:   models.Nutrition{Calories: 380, Protein: 10, Carbs: 62, Fat: 12, Fiber: 6},
		PrepTime:    30,
		CookTime:    45,
		Servings:    6,
		Difficulty:  "Hard",
		DietaryTags: models.StringArray{"Vegetarian", "Gluten-Free", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=800",
	},
	{
		Name:        "Palak Paneer",
		Description: "Creamy spinach curry with fresh paneer cheese cubes.",
		Cuisine:     "Indian",
		Ingredients: models.StringArray{"spinach", "paneer", "onion", "tomato", "ginger", "garlic", "green chili", "cream", "cumin", "garam masala"},
		Instructions: models.StringArray{
			"Blanch spinach and blend into a smooth puree",
			"Sauté cumin, onions, ginger, and garlic",
			"Add tomatoes and cook until soft",
			"Add spinach puree and spices",
			"Add cream and simmer for 10 minutes",
			"Add paneer cubes and cook for 5 minutes",
			"Serve hot with naan or rice",
		},
		Nutrition:   models.Nutrition{Calories: 320, Protein: 18, Carbs: 14, Fat: 22, Fiber: 5},
		PrepTime:    20,
		CookTime:    30,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian", "Gluten-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1606471191009-63994c53433b?w=800",
	},
	// Chinese
	{
		Name:        "Kung Pao Chicken",
		Description: "Spicy stir-fried chicken with peanuts, vegetables, and chili peppers.",
		Cuisine:     "Chinese",
		Ingredients: models.StringArray{"chicken", "peanuts", "dried chili", "scallions", "ginger", "garlic", "soy sauce", "vinegar", "sugar", "cornstarch", "sesame oil"},
		Instructions: models.StringArray{
			"Marinate chicken in soy sauce and cornstarch",
			"Mix sauce ingredients in a bowl",
			"Stir-fry chicken until golden, set aside",
			"Sauté ginger, garlic, and dried chilies",
			"Add chicken and sauce, toss quickly",
			"Add peanuts and scallions",
			"Serve immediately with steamed rice",
		},
		Nutrition:   models.Nutrition{Calories: 340, Protein: 28, Carbs: 18, Fat: 18, Fiber: 3},
		PrepTime:    20,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Spicy", "Dairy-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=800",
	},
	{
		Name:        "Vegetable Fried Rice",
		Description: "Classic Chinese fried rice with mixed vegetables and soy sauce.",
		Cuisine:     "Chinese",
		Ingredients: models.StringArray{"rice", "eggs", "carrots", "peas", "corn", "scallions", "soy sauce", "sesame oil", "garlic", "ginger"},
		Instructions: models.StringArray{
			"Cook rice and let it cool completely",
			"Scramble eggs in a hot wok, set aside",
			"Sauté garlic and ginger in sesame oil",
			"Add vegetables and stir-fry for 3 minutes",
			"Add rice and toss with soy sauce",
			"Mix in scrambled eggs and scallions",
			"Serve hot",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 10, Carbs: 42, Fat: 8, Fiber: 4},
		PrepTime:    15,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1581184953987-5668072c8420?w=500",
	},
	{
		Name:        "Sweet and Sour Tofu",
		Description: "Crispy tofu cubes in tangy sweet and sour sauce with vegetables.",
		Cuisine:     "Chinese",
		Ingredients: models.StringArray{"tofu", "bell peppers", "pineapple", "ketchup", "vinegar", "sugar", "soy sauce", "cornstarch", "ginger", "garlic"},
		Instructions: models.StringArray{
			"Press tofu to remove excess water, cube it",
			"Coat tofu in cornstarch and fry until golden",
			"Mix sauce ingredients in a bowl",
			"Stir-fry ginger, garlic, and bell peppers",
			"Add pineapple and sauce, bring to simmer",
			"Add crispy tofu and toss to coat",
			"Serve with steamed rice",
		},
		Nutrition:   models.Nutrition{Calories: 260, Protein: 14, Carbs: 32, Fat: 10, Fiber: 4},
		PrepTime:    20,
		CookTime:    20,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Dairy-Free", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800",
	},
	// Mexican
	{
		Name:        "Chicken Tacos",
		Description: "Authentic Mexican tacos with marinated grilled chicken and fresh toppings.",
		Cuisine:     "Mexican",
		Ingredients: models.StringArray{"chicken", "corn tortillas", "lime", "cilantro", "onion", "cumin", "chili powder", "garlic", "avocado", "salsa"},
		Instructions: models.StringArray{
			"Marinate chicken in lime juice and spices",
			"Grill chicken until fully cooked, slice thinly",
			"Warm corn tortillas on a dry skillet",
			"Dice onions and chop cilantro",
			"Assemble tacos with chicken, onions, cilantro",
			"Top with avocado slices and salsa",
			"Serve with lime wedges",
		},
		Nutrition:   models.Nutrition{Calories: 320, Protein: 28, Carbs: 28, Fat: 12, Fiber: 5},
		PrepTime:    20,
		CookTime:    20,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Dairy-Free", "Nut-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=800",
	},
	{
		Name:        "Vegetarian Quesadillas",
		Description: "Cheesy quesadillas filled with beans, corn, and peppers.",
		Cuisine:     "Mexican",
		Ingredients: models.StringArray{"flour tortillas", "cheese", "black beans", "corn", "bell peppers", "onion", "cumin", "sour cream", "salsa", "guacamole"},
		Instructions: models.StringArray{
			"Sauté onions and peppers until soft",
			"Add beans, corn, and cumin, cook for 5 minutes",
			"Heat a large skillet over medium heat",
			"Place tortilla, add cheese and filling",
			"Top with another tortilla and cook until golden",
			"Flip and cook other side",
			"Cut into wedges and serve with toppings",
		},
		Nutrition:   models.Nutrition{Calories: 380, Protein: 16, Carbs: 42, Fat: 16, Fiber: 8},
		PrepTime:    15,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1730878423239-0fd430bbac37?w=500",
	},
	{
		Name:        "Guacamole",
		Description: "Fresh and creamy avocado dip with lime and cilantro.",
		Cuisine:     "Mexican",
		Ingredients: models.StringArray{"avocado", "lime", "cilantro", "tomato", "onion", "jalapeño", "garlic", "salt", "cumin"},
		Instructions: models.StringArray{
			"Cut avocados in half, remove pit, scoop flesh",
			"Mash avocados in a bowl (leave some chunks)",
			"Finely dice tomato, onion, and jalapeño",
			"Chop cilantro and mince garlic",
			"Mix all ingredients together",
			"Add lime juice, salt, and cumin to taste",
			"Serve immediately with tortilla chips",
		},
		Nutrition:   models.Nutrition{Calories: 150, Protein: 2, Carbs: 8, Fat: 14, Fiber: 6},
		PrepTime:    15,
		CookTime:    0,
		Servings:    6,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Gluten-Free", "Keto", "Low-Carb"},
		ImageURL:    "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=800",
	},
	// American
	{
		Name:        "Classic Cheeseburger",
		Description: "Juicy beef patty with melted cheese on a toasted bun.",
		Cuisine:     "American",
		Ingredients: models.StringArray{"ground beef", "cheese", "burger buns", "lettuce", "tomato", "onion", "pickles", "ketchup", "mustard", "salt", "pepper"},
		Instructions: models.StringArray{
			"Form beef into patties, season with salt and pepper",
			"Grill or pan-fry patties over high heat",
			"Flip after 4 minutes, add cheese",
			"Toast buns on the grill",
			"Assemble burgers with desired toppings",
			"Serve with fries or salad",
		},
		Nutrition:   models.Nutrition{Calories: 520, Protein: 32, Carbs: 32, Fat: 28, Fiber: 3},
		PrepTime:    15,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Nut-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800",
	},
	{
		Name:        "Mac and Cheese",
		Description: "Creamy, cheesy pasta bake with a crispy breadcrumb topping.",
		Cuisine:     "American",
		Ingredients: models.StringArray{"macaroni", "cheddar cheese", "milk", "butter", "flour", "breadcrumbs", "parmesan", "mustard", "paprika"},
		Instructions: models.StringArray{
			"Cook macaroni until al dente, drain",
			"Make roux with butter and flour",
			"Whisk in milk and cook until thickened",
			"Add cheese and stir until melted",
			"Mix in cooked macaroni",
			"Top with breadcrumbs and parmesan",
			"Bake at 375°F for 25 minutes until golden",
		},
		Nutrition:   models.Nutrition{Calories: 480, Protein: 20, Carbs: 48, Fat: 24, Fiber: 2},
		PrepTime:    20,
		CookTime:    30,
		Servings:    6,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1543339494-b4cd4f7ba686?w=800",
	},
	{
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce with creamy Caesar dressing and croutons.",
		Cuisine:     "American",
		Ingredients: models.StringArray{"romaine lettuce", "parmesan", "croutons", "egg", "olive oil", "lemon juice", "anchovy", "garlic", "dijon mustard", "worcestershire sauce"},
		Instructions: models.StringArray{
			"Wash and chop romaine into bite-sized pieces",
			"Make dressing: blend egg, oil, lemon, anchovy, garlic",
			"Toss lettuce with dressing",
			"Add parmesan shavings and croutons",
			"Season with black pepper",
			"Serve immediately",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 10, Carbs: 12, Fat: 22, Fiber: 4},
		PrepTime:    15,
		CookTime:    0,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?w=800",
	},
	// Mediterranean
	{
		Name:        "Greek Salad",
		Description: "Fresh Mediterranean salad with cucumbers, tomatoes, olives, and feta.",
		Cuisine:     "Mediterranean",
		Ingredients: models.StringArray{"cucumber", "tomato", "red onion", "kalamata olives", "feta cheese", "olive oil", "oregano", "lemon juice"},
		Instructions: models.StringArray{
			"Chop cucumber and tomato into chunks",
			"Slice red onion thinly",
			"Combine vegetables in a large bowl",
			"Add olives and crumbled feta",
			"Drizzle with olive oil and lemon juice",
			"Sprinkle with dried oregano",
			"Toss gently and serve",
		},
		Nutrition:   models.Nutrition{Calories: 220, Protein: 8, Carbs: 12, Fat: 18, Fiber: 4},
		PrepTime:    15,
		CookTime:    0,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Gluten-Free", "Low-Carb"},
		ImageURL:    "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=800",
	},
	{
		Name:        "Hummus",
		Description: "Creamy chickpea dip with tahini, lemon, and garlic.",
		Cuisine:     "Mediterranean",
		Ingredients: models.StringArray{"chickpeas", "tahini", "lemon juice", "garlic", "olive oil", "cumin", "paprika", "salt"},
		Instructions: models.StringArray{
			"Drain and rinse chickpeas",
			"Blend chickpeas with tahini and lemon juice",
			"Add garlic and cumin",
			"Stream in olive oil while blending",
			"Add water to reach desired consistency",
			"Season with salt",
			"Garnish with paprika and olive oil",
		},
		Nutrition:   models.Nutrition{Calories: 180, Protein: 6, Carbs: 16, Fat: 12, Fiber: 5},
		PrepTime:    10,
		CookTime:    0,
		Servings:    8,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1637949385162-e416fb15b2ce?w=800",
	},
	{
		Name:        "Chicken Shawarma",
		Description: "Middle Eastern spiced chicken served with pita and tahini sauce.",
		Cuisine:     "Mediterranean",
		Ingredients: models.StringArray{"chicken", "yogurt", "lemon", "garlic", "cumin", "coriander", "paprika", "turmeric", "cinnamon", "pita bread", "tahini"},
		Instructions: models.StringArray{
			"Mix yogurt with spices and lemon juice",
			"Marinate chicken for at least 2 hours",
			"Grill or roast chicken until cooked through",
			"Slice chicken thinly",
			"Warm pita bread",
			"Make tahini sauce with lemon and garlic",
			"Serve chicken in pita with sauce and vegetables",
		},
		Nutrition:   models.Nutrition{Calories: 380, Protein: 35, Carbs: 28, Fat: 14, Fiber: 3},
		PrepTime:    20,
		CookTime:    30,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Nut-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1529193591184-b1d58069ecdd?w=800",
	},
	// Thai
	{
		Name:        "Pad Thai",
		Description: "Classic Thai stir-fried noodles with shrimp, tofu, and peanuts.",
		Cuisine:     "Thai",
		Ingredients: models.StringArray{"rice noodles", "shrimp", "tofu", "egg", "bean sprouts", "scallions", "peanuts", "tamarind", "fish sauce", "palm sugar", "lime"},
		Instructions: models.StringArray{
			"Soak rice noodles in warm water until soft",
			"Make sauce with tamarind, fish sauce, and sugar",
			"Stir-fry shrimp and tofu, set aside",
			"Scramble egg in the wok",
			"Add noodles and sauce, toss quickly",
			"Add shrimp, tofu, bean sprouts, and scallions",
			"Serve with crushed peanuts and lime wedges",
		},
		Nutrition:   models.Nutrition{Calories: 420, Protein: 22, Carbs: 52, Fat: 14, Fiber: 4},
		PrepTime:    20,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Dairy-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=800",
	},
	{
		Name:        "Green Curry",
		Description: "Aromatic Thai curry with coconut milk, vegetables, and basil.",
		Cuisine:     "Thai",
		Ingredients: models.StringArray{"coconut milk", "green curry paste", "chicken", "thai eggplant", "bamboo shoots", "bell peppers", "thai basil", "fish sauce", "palm sugar", "lime leaves"},
		Instructions: models.StringArray{
			"Heat thick coconut cream in a pot",
			"Add green curry paste, fry until fragrant",
			"Add chicken, cook until sealed",
			"Pour in remaining coconut milk",
			"Add vegetables and simmer for 15 minutes",
			"Season with fish sauce and palm sugar",
			"Garnish with Thai basil and serve with rice",
		},
		Nutrition:   models.Nutrition{Calories: 380, Protein: 24, Carbs: 14, Fat: 26, Fiber: 4},
		PrepTime:    15,
		CookTime:    25,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Gluten-Free", "Dairy-Free", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1626804475297-411d863b67ab?w=800",
	},
	// Japanese
	{
		Name:        "Vegetable Tempura",
		Description: "Light and crispy battered vegetables, a Japanese favorite.",
		Cuisine:     "Japanese",
		Ingredients: models.StringArray{"sweet potato", "eggplant", "bell pepper", "mushroom", "green beans", "flour", "cornstarch", "egg", "ice water", "soy sauce", "daikon"},
		Instructions: models.StringArray{
			"Cut vegetables into uniform pieces",
			"Make batter: mix flour, cornstarch, egg, and ice water",
			"Heat oil to 350°F",
			"Dip vegetables in batter, fry until golden",
			"Drain on paper towels",
			"Make dipping sauce with soy sauce and daikon",
			"Serve immediately while crispy",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 6, Carbs: 32, Fat: 14, Fiber: 5},
		PrepTime:    20,
		CookTime:    20,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian", "Dairy-Free", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1615361200141-f45040f367be?w=800",
	},
	{
		Name:        "Miso Soup",
		Description: "Traditional Japanese soup with tofu, seaweed, and miso paste.",
		Cuisine:     "Japanese",
		Ingredients: models.StringArray{"dashi", "miso paste", "tofu", "wakame seaweed", "scallions", "mushrooms"},
		Instructions: models.StringArray{
			"Prepare dashi broth",
			"Soak wakame in water until expanded",
			"Heat dashi in a pot",
			"Add tofu cubes and mushrooms",
			"Dissolve miso paste in a ladle of hot broth",
			"Stir miso into the soup (do not boil)",
			"Add wakame and scallions, serve immediately",
		},
		Nutrition:   models.Nutrition{Calories: 80, Protein: 6, Carbs: 8, Fat: 3, Fiber: 2},
		PrepTime:    10,
		CookTime:    15,
		Servings:    4,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Low-Calorie"},
		ImageURL:    "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800",
	},
	// French
	{
		Name:        "Ratatouille",
		Description: "Provençal vegetable stew with eggplant, zucchini, and tomatoes.",
		Cuisine:     "French",
		Ingredients: models.StringArray{"eggplant", "zucchini", "bell pepper", "tomato", "onion", "garlic", "herbs de provence", "olive oil", "basil"},
		Instructions: models.StringArray{
			"Cut all vegetables into uniform cubes",
			"Sauté eggplant until golden, set aside",
			"Sauté zucchini and peppers, set aside",
			"Cook onions and garlic until soft",
			"Add tomatoes and herbs, simmer for 10 minutes",
			"Combine all vegetables, simmer for 20 minutes",
			"Garnish with fresh basil",
		},
		Nutrition:   models.Nutrition{Calories: 160, Protein: 4, Carbs: 18, Fat: 10, Fiber: 6},
		PrepTime:    20,
		CookTime:    45,
		Servings:    6,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Low-Calorie"},
		ImageURL:    "https://images.unsplash.com/photo-1572453800999-e8d2d1589b7c?w=800",
	},
	{
		Name:        "French Omelette",
		Description: "Classic French-style omelette, soft and creamy inside.",
		Cuisine:     "French",
		Ingredients: models.StringArray{"eggs", "butter", "chives", "salt", "white pepper", "gruyère cheese"},
		Instructions: models.StringArray{
			"Beat eggs with salt and pepper until smooth",
			"Heat butter in a non-stick pan over medium heat",
			"Pour in eggs, stir gently with spatula",
			"When mostly set but still runny on top, stop stirring",
			"Add cheese and chives to center",
			"Fold omelette into thirds",
			"Slide onto plate, seam side down",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 18, Carbs: 2, Fat: 22, Fiber: 0},
		PrepTime:    5,
		CookTime:    5,
		Servings:    1,
		Difficulty:  "Hard",
		DietaryTags: models.StringArray{"Vegetarian", "Gluten-Free", "Low-Carb", "Keto", "High-Protein"},
		ImageURL:    "https://images.unsplash.com/photo-1510693206972-df098062cb71?w=800",
	},
	// Additional
	{
		Name:        "Lentil Soup",
		Description: "Hearty and nutritious soup with lentils, vegetables, and herbs.",
		Cuisine:     "Mediterranean",
		Ingredients: models.StringArray{"lentils", "carrots", "celery", "onion", "garlic", "vegetable broth", "tomatoes", "cumin", "bay leaf", "lemon"},
		Instructions: models.StringArray{
			"Sauté onions, carrots, and celery",
			"Add garlic and cumin, cook for 1 minute",
			"Add lentils, broth, and tomatoes",
			"Add bay leaf and simmer for 30 minutes",
			"Season with salt and pepper",
			"Add lemon juice before serving",
			"Serve with crusty bread",
		},
		Nutrition:   models.Nutrition{Calories: 240, Protein: 14, Carbs: 36, Fat: 4, Fiber: 14},
		PrepTime:    15,
		CookTime:    40,
		Servings:    6,
		Difficulty:  "Easy",
		DietaryTags: models.StringArray{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "High-Protein", "Low-Calorie"},
		ImageURL:    "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800",
	},
	{
		Name:        "Stuffed Bell Peppers",
		Description: "Colorful peppers filled with rice, vegetables, and cheese.",
		Cuisine:     "American",
		Ingredients: models.StringArray{"bell peppers", "rice", "tomato sauce", "onion", "garlic", "cheese", "herbs", "olive oil"},
		Instructions: models.StringArray{
			"Cut tops off peppers, remove seeds",
			"Cook rice according to package directions",
			"Sauté onions and garlic",
			"Mix rice with sautéed vegetables and tomato sauce",
			"Stuff peppers with the mixture",
			"Top with cheese",
			"Bake at 375°F for 30 minutes",
		},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 10, Carbs: 38, Fat: 10, Fiber: 5},
		PrepTime:    20,
		CookTime:    35,
		Servings:    4,
		Difficulty:  "Medium",
		DietaryTags: models.StringArray{"Vegetarian", "Nut-Free"},
		ImageURL:    "https://images.unsplash.com/photo-1596560548464-f010549b84d7?w=800",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()

	// Replace the catalog wholesale so reseeding is idempotent.
	if err := db.WithContext(ctx).Exec("DELETE FROM recipes").Error; err != nil {
		logger.Fatal("failed to clear existing recipes", zap.Error(err))
	}
	logger.Info("cleared existing recipes")

	repo := store.New(db)
	for i := range recipes {
		if err := repo.Create(ctx, &recipes[i]); err != nil {
			logger.Fatal("failed to insert recipe",
				zap.String("name", recipes[i].Name),
				zap.Error(err),
			)
		}
	}
	logger.Info("seeded recipes", zap.Int("count", len(recipes)))

	counts := map[string]int{}
	for _, r := range recipes {
		counts[r.Cuisine]++
	}
	cuisines := make([]string, 0, len(counts))
	for c := range counts {
		cuisines = append(cuisines, c)
	}
	sort.Slice(cuisines, func(i, j int) bool {
		return counts[cuisines[i]] > counts[cuisines[j]]
	})
	for _, c := range cuisines {
		logger.Info("recipes by cuisine", zap.String("cuisine", c), zap.Int("count", counts[c]))
	}
}
