// Command seed inserts sample portfolio projects for local development and
// first deployment. Running it twice inserts duplicates; wipe the projects
// table first if that matters.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/devfolio/backend/internal/logging"
	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/joho/godotenv"
)

var sampleProjects = []*model.Project{
	{
		Title:       "E-Commerce Platform",
		Description: "Full-stack e-commerce application with cart, payments, and admin dashboard. Features include product filtering, user authentication, order tracking, and real-time inventory management.",
		TechStack:   []string{"React", "Node.js", "Express", "MongoDB", "Stripe", "JWT", "Redux"},
		GitHubURL:   "https://github.com/yourusername/ecommerce-platform",
		DemoURL:     "https://ecommerce-demo.vercel.app",
		ImageURL:    "https://images.unsplash.com/photo-1557821552-17105176677c?w=800",
		Featured:    true,
	},
	{
		Title:       "AI Chat Assistant",
		Description: "Real-time chat application powered by GPT-4. Users can have intelligent conversations, get code help, and receive personalized recommendations.",
		TechStack:   []string{"Next.js", "TypeScript", "OpenAI API", "Tailwind CSS"},
		GitHubURL:   "https://github.com/yourusername/ai-chat-assistant",
		DemoURL:     "https://ai-chat-demo.vercel.app",
		ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
		Featured:    true,
	},
	{
		Title:       "Task Management Dashboard",
		Description: "Kanban-style project management tool with drag-and-drop interface, team collaboration features, deadlines, and progress tracking.",
		TechStack:   []string{"React", "Firebase", "Material-UI"},
		GitHubURL:   "https://github.com/yourusername/task-dashboard",
		DemoURL:     "https://task-demo.netlify.app",
		ImageURL:    "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800",
		Featured:    false,
	},
	{
		Title:       "Weather Forecast App",
		Description: "Location-aware weather dashboard with 7-day forecasts, severe weather alerts, and interactive radar maps.",
		TechStack:   []string{"Vue.js", "OpenWeather API", "Chart.js"},
		GitHubURL:   "https://github.com/yourusername/weather-app",
		Featured:    false,
	},
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logging.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, dbURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	repo := repository.NewPgProjectRepository(pool)
	for _, p := range sampleProjects {
		if err := repo.Insert(ctx, p); err != nil {
			logging.Fatal("seed insert failed", "title", p.Title, "error", err)
		}
		slog.Info("seeded project", "id", p.ID, "title", p.Title)
	}
	slog.Info("seed complete", "count", len(sampleProjects))
}
