package wizard

import (
	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// DefaultQuestions returns the stack-selection questions in dependency
// order: every axis is asked only after the axes it depends on, so its
// condition and option set can read settled answers.
func DefaultQuestions(defaultName string) []Question {
	if defaultName == "" || defaultName == "." || defaultName == "/" {
		defaultName = "my-app"
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Directory and package name for the new project.",
			Default:     defaultName,
			Required:    true,
		},
		{
			ID:          "frontends",
			Type:        QuestionTypeMultiSelect,
			Title:       "Frontends",
			Description: "Pick at most one web frontend; native can be added alongside.",
			Options: []Option{
				{Label: "Next.js", Value: "next", Desc: "React full-stack framework"},
				{Label: "React", Value: "react", Desc: "Vite + React SPA"},
				{Label: "SvelteKit", Value: "svelte", Desc: "Svelte application framework"},
				{Label: "Expo", Value: "native", Desc: "React Native mobile app"},
			},
			Defaults: []string{"next"},
		},
		{
			ID:          "backend",
			Type:        QuestionTypeSelect,
			Title:       "Backend",
			Description: "Server framework, or a serverless Convex backend.",
			Options: []Option{
				{Label: "Hono", Value: "hono", Desc: "Lightweight, multi-runtime framework"},
				{Label: "Express", Value: "express", Desc: "Classic Node.js framework"},
				{Label: "Fastify", Value: "fastify", Desc: "Fast, low-overhead framework"},
				{Label: "Convex", Value: "convex", Desc: "Serverless backend platform"},
				{Label: "None", Value: "none", Desc: "Frontend-only project"},
			},
			Default:  "hono",
			Required: true,
		},
		{
			ID:          "runtime",
			Type:        QuestionTypeSelect,
			Title:       "Runtime",
			Description: "JavaScript runtime for the server.",
			Options: []Option{
				{Label: "Bun", Value: "bun", Desc: "Fast all-in-one runtime"},
				{Label: "Node.js", Value: "node", Desc: "Standard runtime"},
			},
			Default:   "bun",
			Required:  true,
			Condition: hasServer,
		},
		{
			ID:          "database",
			Type:        QuestionTypeSelect,
			Title:       "Database",
			Description: "Persistence engine for the server.",
			Options: []Option{
				{Label: "SQLite", Value: "sqlite", Desc: "Embedded file database"},
				{Label: "PostgreSQL", Value: "postgres", Desc: "Relational database"},
				{Label: "MySQL", Value: "mysql", Desc: "Relational database"},
				{Label: "MongoDB", Value: "mongodb", Desc: "Document database"},
				{Label: "None", Value: "none", Desc: "No database"},
			},
			Default:   "sqlite",
			Required:  true,
			Condition: hasServer,
		},
		{
			ID:          "orm",
			Type:        QuestionTypeSelect,
			Title:       "ORM",
			Description: "Data access layer for the selected database.",
			OptionsFrom: ormOptions,
			Required:    true,
			Condition:   hasDatabaseEngine,
		},
		{
			ID:          "db_setup",
			Type:        QuestionTypeSelect,
			Title:       "Database hosting",
			Description: "Optional managed hosting for the selected database.",
			OptionsFrom: dbSetupOptions,
			Default:     "none",
			Condition:   hasDatabaseEngine,
		},
		{
			ID:          "auth",
			Type:        QuestionTypeConfirm,
			Title:       "Authentication",
			Description: "Add email/password auth with Better Auth.",
			Default:     "true",
			Condition:   hasServer,
		},
		{
			ID:          "api",
			Type:        QuestionTypeSelect,
			Title:       "API layer",
			Description: "Typed client/server communication.",
			Options: []Option{
				{Label: "tRPC", Value: "trpc", Desc: "End-to-end typesafe RPC"},
				{Label: "oRPC", Value: "orpc", Desc: "OpenAPI-compatible typesafe RPC"},
				{Label: "None", Value: "none", Desc: "No API layer"},
			},
			Default:   "trpc",
			Required:  true,
			Condition: hasServer,
		},
		{
			ID:          "addons",
			Type:        QuestionTypeMultiSelect,
			Title:       "Addons",
			Description: "Optional tooling baked into the project.",
			OptionsFrom: addonOptions,
		},
		{
			ID:          "examples",
			Type:        QuestionTypeMultiSelect,
			Title:       "Examples",
			Description: "Working example features to start from.",
			OptionsFrom: exampleOptions,
			Condition:   hasServer,
		},
		{
			ID:          "package_manager",
			Type:        QuestionTypeSelect,
			Title:       "Package manager",
			Description: "Used for workspaces and dependency installation.",
			Options: []Option{
				{Label: "bun", Value: "bun", Desc: "Fastest installs"},
				{Label: "pnpm", Value: "pnpm", Desc: "Efficient disk usage"},
				{Label: "npm", Value: "npm", Desc: "Ships with Node.js"},
			},
			Default:  "bun",
			Required: true,
		},
		{
			ID:          "deployment",
			Type:        QuestionTypeSelect,
			Title:       "Web deployment",
			Description: "Deployment target for the web frontend.",
			Options: []Option{
				{Label: "Cloudflare Workers", Value: "wrangler", Desc: "Deploy with wrangler"},
				{Label: "None", Value: "none", Desc: "Configure deployment later"},
			},
			Default:   "none",
			Condition: func(cfg *config.ProjectConfig) bool { return cfg.HasWebFrontend() },
		},
		{
			ID:          "git",
			Type:        QuestionTypeConfirm,
			Title:       "Initialize git repository",
			Description: "Create a repository and an initial commit.",
			Default:     "true",
		},
		{
			ID:          "install",
			Type:        QuestionTypeConfirm,
			Title:       "Install dependencies",
			Description: "Run the package manager after generation.",
			Default:     "true",
		},
	}
}

func hasServer(cfg *config.ProjectConfig) bool {
	return cfg.Backend.HasServer()
}

// hasDatabaseEngine gates the questions that refine an already-chosen
// database. HasDatabase cannot serve here: it also requires an ORM, which
// is exactly what these questions are about to ask.
func hasDatabaseEngine(cfg *config.ProjectConfig) bool {
	return cfg.Database != models.DatabaseNone
}

// ormOptions lists the ORMs that support the chosen database.
func ormOptions(cfg *config.ProjectConfig) []Option {
	descs := map[models.ORM]string{
		models.ORMDrizzle:  "TypeScript-first SQL ORM",
		models.ORMPrisma:   "Schema-driven ORM with migrations",
		models.ORMMongoose: "MongoDB object modeling",
	}
	var opts []Option
	for _, orm := range models.AllORMs() {
		if orm == models.ORMNone || !orm.Supports(cfg.Database) {
			continue
		}
		opts = append(opts, Option{Label: string(orm), Value: string(orm), Desc: descs[orm]})
	}
	return opts
}

// dbSetupOptions lists hosting providers compatible with the chosen database.
func dbSetupOptions(cfg *config.ProjectConfig) []Option {
	descs := map[models.DBSetup]string{
		models.DBSetupTurso:    "Edge-hosted libSQL",
		models.DBSetupNeon:     "Serverless Postgres",
		models.DBSetupSupabase: "Postgres platform",
		models.DBSetupD1:       "Cloudflare D1",
		models.DBSetupAtlas:    "MongoDB Atlas",
		models.DBSetupNone:     "Local database",
	}
	var opts []Option
	for _, s := range models.AllDBSetups() {
		if !s.CompatibleWith(cfg.Database) {
			continue
		}
		label := string(s)
		if s == models.DBSetupNone {
			label = "None"
		}
		opts = append(opts, Option{Label: label, Value: string(s), Desc: descs[s]})
	}
	return opts
}

// addonOptions hides addons whose prerequisites are not selected.
func addonOptions(cfg *config.ProjectConfig) []Option {
	opts := []Option{
		{Label: "Biome", Value: "biome", Desc: "Formatter and linter"},
		{Label: "Husky", Value: "husky", Desc: "Git hooks"},
	}
	if cfg.HasWebFrontend() {
		opts = append([]Option{
			{Label: "PWA", Value: "pwa", Desc: "Progressive web app support"},
		}, opts...)
	}
	return opts
}

// exampleOptions hides examples whose prerequisites are not selected.
func exampleOptions(cfg *config.ProjectConfig) []Option {
	var opts []Option
	if cfg.HasDatabase() {
		opts = append(opts, Option{Label: "Todo app", Value: "todo", Desc: "CRUD over the selected database"})
	}
	opts = append(opts, Option{Label: "AI chat", Value: "ai", Desc: "Streaming AI chat endpoint"})
	return opts
}

// FilteredQuestions returns questions whose conditions pass against cfg.
func FilteredQuestions(questions []Question, cfg *config.ProjectConfig) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(cfg) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
