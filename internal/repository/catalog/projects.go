package catalog

import "portfolio-backend/internal/domain"

// Default returns the built-in project catalog
func Default() []domain.ProjectRecord {
	return []domain.ProjectRecord{
		{
			ID:           1,
			Title:        "EgyptAir – Air Hospitality Administrative System",
			Description:  "Administrative system for air hospitality services built with Laravel and MySQL.",
			Technologies: []string{"Laravel", "MySQL"},
			Features:     []string{"Administrative dashboard", "Service management", "Database integration"},
			Status:       "Completed",
			Category:     domain.CategoryBackEnd,
			Image:        "dist/assets/img/portfolio/project9.png",
			DemoLink:     "#",
			GithubLink:   "#",
		},
		{
			ID:           2,
			Title:        "DevFolio website",
			Description:  "Portfolio website template built with HTML, CSS, and Bootstrap.",
			Technologies: []string{"HTML", "CSS", "Bootstrap"},
			Features:     []string{"Responsive design", "Portfolio showcase", "Clean UI"},
			Status:       "Completed",
			Category:     domain.CategoryFrontEnd,
			Image:        "dist/assets/img/portfolio/project1.png",
			DemoLink:     "https://eslamabdelbasset1.github.io/Devfolio",
			GithubLink:   "#",
		},
		{
			ID:           3,
			Title:        "Angora website",
			Description:  "Modern website built with HTML, CSS, Bootstrap, and JavaScript.",
			Technologies: []string{"HTML", "CSS", "Bootstrap", "JavaScript"},
			Features:     []string{"Interactive elements", "Responsive layout", "Modern design"},
			Status:       "Completed",
			Category:     domain.CategoryFrontEnd,
			Image:        "dist/assets/img/portfolio/project2.png",
			DemoLink:     "https://eslamabdelbasset1.github.io/Angora",
			GithubLink:   "#",
		},
		{
			ID:           4,
			Title:        "Education Course Website",
			Description:  "Website for educational courses built with HTML, CSS, and Bootstrap.",
			Technologies: []string{"HTML", "CSS", "Bootstrap"},
			Features:     []string{"Course catalog", "Responsive design", "Clean layout"},
			Status:       "Completed",
			Category:     domain.CategoryFrontEnd,
			Image:        "dist/assets/img/portfolio/portfolio-3.jpg",
			DemoLink:     "https://eslamabdelbasset1.github.io/courses-website",
			GithubLink:   "#",
		},
		{
			ID:           5,
			Title:        "Smart Login website",
			Description:  "Login system with HTML, CSS, Bootstrap, and JavaScript.",
			Technologies: []string{"HTML", "CSS", "Bootstrap", "JavaScript"},
			Features:     []string{"User authentication", "Form validation", "Responsive design"},
			Status:       "Completed",
			Category:     domain.CategoryFrontEnd,
			Image:        "dist/assets/img/portfolio/project4.png",
			DemoLink:     "https://eslamabdelbasset1.github.io/smart-login-system",
			GithubLink:   "#",
		},
		{
			ID:           6,
			Title:        "Bookmarker",
			Description:  "Bookmark management application built with HTML, CSS, Bootstrap, and JavaScript.",
			Technologies: []string{"HTML", "CSS", "Bootstrap", "JavaScript"},
			Features:     []string{"Bookmark storage", "Local storage", "User interface"},
			Status:       "Completed",
			Category:     domain.CategoryFrontEnd,
			Image:        "dist/assets/img/portfolio/bokkmarker.jpg",
			DemoLink:     "https://eslamabdelbasset1.github.io/Bookmarker/",
			GithubLink:   "#",
		},
		{
			ID:           7,
			Title:        "CRUD System website",
			Description:  "Create, Read, Update, Delete system built with HTML, CSS, JavaScript, jQuery, and Bootstrap.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "jQuery", "Bootstrap"},
			Features:     []string{"Data management", "CRUD operations", "User interface"},
			Status:       "Completed",
			Category:     domain.CategoryFrontEnd,
			Image:        "dist/assets/img/portfolio/project5.png",
			DemoLink:     "https://eslamabdelbasset1.github.io/CRUD-System",
			GithubLink:   "#",
		},
		{
			ID:           8,
			Title:        "Movies App API",
			Description:  "Movie application using API integration with HTML, CSS, JS, Sass, TypeScript, and SCSS.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "Sass", "TypeScript", "SCSS", "API"},
			Features:     []string{"Movie database", "API integration", "Search functionality"},
			Status:       "Completed",
			Category:     domain.CategoryAPI,
			Image:        "dist/assets/img/portfolio/project7.png",
			DemoLink:     "https://eslamabdelbasset1.github.io/movies-app-angular",
			GithubLink:   "#",
		},
		{
			ID:           9,
			Title:        "Quran App",
			Description:  "Quran application with API integration built with HTML, CSS, JS, Sass, TypeScript, and SCSS.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "Sass", "TypeScript", "SCSS", "API"},
			Features:     []string{"Quran verses", "Audio playback", "Search functionality"},
			Status:       "Completed",
			Category:     domain.CategoryAPI,
			Image:        "dist/assets/img/portfolio/project8.png",
			DemoLink:     "https://eslamabdelbasset1.github.io/quranApp-master",
			GithubLink:   "#",
		},
		{
			ID:           10,
			Title:        "Weather App",
			Description:  "Weather application using API integration with HTML and CSS.",
			Technologies: []string{"HTML", "CSS", "API"},
			Features:     []string{"Weather data", "Location-based", "Forecast display"},
			Status:       "Completed",
			Category:     domain.CategoryAPI,
			Image:        "dist/assets/img/portfolio/3.jpg",
			DemoLink:     "https://eslamabdelbasset1.github.io/Weather-api",
			GithubLink:   "#",
		},
		{
			ID:           11,
			Title:        "Todo List",
			Description:  "Todo list application built with Laravel and MySQL.",
			Technologies: []string{"Laravel", "MySQL"},
			Features:     []string{"Task management", "User authentication", "Database storage"},
			Status:       "Completed",
			Category:     domain.CategoryBackEnd,
			Image:        "dist/assets/img/portfolio/todo.jpg",
			DemoLink:     "#",
			GithubLink:   "https://github.com/eslamabdelbasset1/todo-list",
		},
		{
			ID:           12,
			Title:        "Medicazone Store Ecommerce",
			Description:  "Ecommerce store for medical products built with Laravel and MySQL.",
			Technologies: []string{"Laravel", "MySQL"},
			Features:     []string{"Product catalog", "Shopping cart", "Payment processing"},
			Status:       "Completed",
			Category:     domain.CategoryBackEnd,
			Image:        "dist/assets/img/portfolio/back2.jpg",
			DemoLink:     "#",
			GithubLink:   "https://github.com/eslamabdelbasset1/medicazone-finaly",
		},
		{
			ID:           13,
			Title:        "EgyShop Ecommerce",
			Description:  "Ecommerce platform built with Laravel and MySQL.",
			Technologies: []string{"Laravel", "MySQL"},
			Features:     []string{"Product management", "User accounts", "Order processing"},
			Status:       "Completed",
			Category:     domain.CategoryBackEnd,
			Image:        "dist/assets/img/portfolio/back1.jpg",
			DemoLink:     "#",
			GithubLink:   "https://github.com/eslamabdelbasset1/EgyShop",
		},
		{
			ID:           14,
			Title:        "Impact Studios CMS",
			Description:  "Content Management System for Impact Studios built with Laravel and MySQL.",
			Technologies: []string{"Laravel", "MySQL"},
			Features:     []string{"Content management", "User roles", "Dynamic pages"},
			Status:       "Completed",
			Category:     domain.CategoryBackEnd,
			Image:        "dist/assets/img/portfolio/impact.jpg",
			DemoLink:     "https://impactstudio.uk",
			GithubLink:   "#",
		},
		{
			ID:           15,
			Title:        "Bank Management System",
			Description:  "Bank management system built with C++.",
			Technologies: []string{"C++"},
			Features:     []string{"Account management", "Transaction processing", "Data storage"},
			Status:       "Completed",
			Category:     domain.CategoryCpp,
			Image:        "dist/assets/img/portfolio/bank.png",
			DemoLink:     "#",
			GithubLink:   "https://github.com/eslamabdelbasset1/Bank-Management-System-",
		},
	}
}
