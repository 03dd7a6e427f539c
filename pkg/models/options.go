package models

import "fmt"

// Frontend identifies one selectable frontend variant. A project may select
// zero or more frontends (e.g. a web app and a native app in one run).
type Frontend string

const (
	// FrontendNext is a Next.js web frontend.
	FrontendNext Frontend = "next"

	// FrontendReact is a Vite + React web frontend.
	FrontendReact Frontend = "react"

	// FrontendSvelte is a SvelteKit web frontend.
	FrontendSvelte Frontend = "svelte"

	// FrontendNative is an Expo React Native app.
	FrontendNative Frontend = "native"

	// FrontendNone is the explicit empty selection.
	FrontendNone Frontend = "none"
)

// AllFrontends returns the selectable frontend values in canonical order.
// FrontendNone is excluded; it is represented by an empty selection set.
func AllFrontends() []Frontend {
	return []Frontend{FrontendNext, FrontendReact, FrontendSvelte, FrontendNative}
}

// IsValid checks if the frontend is a valid value.
func (f Frontend) IsValid() bool {
	switch f {
	case FrontendNext, FrontendReact, FrontendSvelte, FrontendNative, FrontendNone:
		return true
	}
	return false
}

// IsWeb reports whether the frontend renders in a browser. Web frontends
// share the frontend/web-base template family and are eligible for
// web-only add-ons such as PWA support.
func (f Frontend) IsWeb() bool {
	switch f {
	case FrontendNext, FrontendReact, FrontendSvelte:
		return true
	}
	return false
}

// ParseFrontend maps user input to a Frontend value.
func ParseFrontend(s string) (Frontend, error) {
	f := Frontend(s)
	if !f.IsValid() {
		return FrontendNone, fmt.Errorf("unknown frontend %q", s)
	}
	return f, nil
}

// Backend identifies the server framework variant.
type Backend string

const (
	// BackendHono is a Hono server.
	BackendHono Backend = "hono"

	// BackendExpress is an Express server.
	BackendExpress Backend = "express"

	// BackendFastify is a Fastify server.
	BackendFastify Backend = "fastify"

	// BackendConvex is the backend-less variant: all server code lives in
	// Convex functions, so no server-side API or auth layers are generated.
	BackendConvex Backend = "convex"

	// BackendNone means no backend package is generated.
	BackendNone Backend = "none"
)

// AllBackends returns the backend values in canonical order.
func AllBackends() []Backend {
	return []Backend{BackendHono, BackendExpress, BackendFastify, BackendConvex, BackendNone}
}

// IsValid checks if the backend is a valid value.
func (b Backend) IsValid() bool {
	switch b {
	case BackendHono, BackendExpress, BackendFastify, BackendConvex, BackendNone:
		return true
	}
	return false
}

// Serverless reports whether the backend forbids a generated server-side
// API surface (Convex owns the full server lifecycle).
func (b Backend) Serverless() bool {
	return b == BackendConvex
}

// HasServer reports whether a server package is generated at all.
func (b Backend) HasServer() bool {
	return b != BackendNone && b != BackendConvex
}

// ParseBackend maps user input to a Backend value.
func ParseBackend(s string) (Backend, error) {
	b := Backend(s)
	if !b.IsValid() {
		return BackendNone, fmt.Errorf("unknown backend %q", s)
	}
	return b, nil
}

// Runtime identifies the JavaScript runtime target for the server package.
type Runtime string

const (
	// RuntimeBun targets the Bun runtime.
	RuntimeBun Runtime = "bun"

	// RuntimeNode targets Node.js.
	RuntimeNode Runtime = "node"

	// RuntimeNone applies when no server package is generated.
	RuntimeNone Runtime = "none"
)

// AllRuntimes returns the runtime values in canonical order.
func AllRuntimes() []Runtime {
	return []Runtime{RuntimeBun, RuntimeNode, RuntimeNone}
}

// IsValid checks if the runtime is a valid value.
func (r Runtime) IsValid() bool {
	switch r {
	case RuntimeBun, RuntimeNode, RuntimeNone:
		return true
	}
	return false
}

// ParseRuntime maps user input to a Runtime value.
func ParseRuntime(s string) (Runtime, error) {
	r := Runtime(s)
	if !r.IsValid() {
		return RuntimeNone, fmt.Errorf("unknown runtime %q", s)
	}
	return r, nil
}

// Database identifies the database engine.
type Database string

const (
	// DatabaseSQLite is SQLite (or a libSQL-compatible provider).
	DatabaseSQLite Database = "sqlite"

	// DatabasePostgres is PostgreSQL.
	DatabasePostgres Database = "postgres"

	// DatabaseMySQL is MySQL.
	DatabaseMySQL Database = "mysql"

	// DatabaseMongoDB is MongoDB.
	DatabaseMongoDB Database = "mongodb"

	// DatabaseNone means no database layer is generated.
	DatabaseNone Database = "none"
)

// AllDatabases returns the database values in canonical order.
func AllDatabases() []Database {
	return []Database{DatabaseSQLite, DatabasePostgres, DatabaseMySQL, DatabaseMongoDB, DatabaseNone}
}

// IsValid checks if the database is a valid value.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseSQLite, DatabasePostgres, DatabaseMySQL, DatabaseMongoDB, DatabaseNone:
		return true
	}
	return false
}

// ParseDatabase maps user input to a Database value.
func ParseDatabase(s string) (Database, error) {
	d := Database(s)
	if !d.IsValid() {
		return DatabaseNone, fmt.Errorf("unknown database %q", s)
	}
	return d, nil
}

// ORM identifies the schema/query layer.
type ORM string

const (
	// ORMDrizzle is Drizzle ORM.
	ORMDrizzle ORM = "drizzle"

	// ORMPrisma is Prisma.
	ORMPrisma ORM = "prisma"

	// ORMMongoose is Mongoose (MongoDB only).
	ORMMongoose ORM = "mongoose"

	// ORMNone means no schema layer is generated.
	ORMNone ORM = "none"
)

// AllORMs returns the ORM values in canonical order.
func AllORMs() []ORM {
	return []ORM{ORMDrizzle, ORMPrisma, ORMMongoose, ORMNone}
}

// IsValid checks if the ORM is a valid value.
func (o ORM) IsValid() bool {
	switch o {
	case ORMDrizzle, ORMPrisma, ORMMongoose, ORMNone:
		return true
	}
	return false
}

// Supports reports whether the ORM has a schema flavor for the database.
func (o ORM) Supports(d Database) bool {
	switch o {
	case ORMDrizzle, ORMPrisma:
		return d == DatabaseSQLite || d == DatabasePostgres || d == DatabaseMySQL
	case ORMMongoose:
		return d == DatabaseMongoDB
	}
	return false
}

// ParseORM maps user input to an ORM value.
func ParseORM(s string) (ORM, error) {
	o := ORM(s)
	if !o.IsValid() {
		return ORMNone, fmt.Errorf("unknown orm %q", s)
	}
	return o, nil
}

// DBSetup identifies the hosted database provider whose setup script runs
// after materialization. The engine never talks to the provider itself.
type DBSetup string

const (
	// DBSetupTurso provisions a Turso (libSQL) database.
	DBSetupTurso DBSetup = "turso"

	// DBSetupNeon provisions a Neon Postgres database.
	DBSetupNeon DBSetup = "neon"

	// DBSetupSupabase provisions a Supabase Postgres database.
	DBSetupSupabase DBSetup = "supabase"

	// DBSetupD1 provisions a Cloudflare D1 database.
	DBSetupD1 DBSetup = "d1"

	// DBSetupAtlas provisions a MongoDB Atlas cluster.
	DBSetupAtlas DBSetup = "atlas"

	// DBSetupNone skips provider setup.
	DBSetupNone DBSetup = "none"
)

// AllDBSetups returns the provider values in canonical order.
func AllDBSetups() []DBSetup {
	return []DBSetup{DBSetupTurso, DBSetupNeon, DBSetupSupabase, DBSetupD1, DBSetupAtlas, DBSetupNone}
}

// IsValid checks if the provider is a valid value.
func (s DBSetup) IsValid() bool {
	switch s {
	case DBSetupTurso, DBSetupNeon, DBSetupSupabase, DBSetupD1, DBSetupAtlas, DBSetupNone:
		return true
	}
	return false
}

// CompatibleWith reports whether the provider serves the database engine.
func (s DBSetup) CompatibleWith(d Database) bool {
	switch s {
	case DBSetupTurso, DBSetupD1:
		return d == DatabaseSQLite
	case DBSetupNeon, DBSetupSupabase:
		return d == DatabasePostgres
	case DBSetupAtlas:
		return d == DatabaseMongoDB
	case DBSetupNone:
		return true
	}
	return false
}

// ParseDBSetup maps user input to a DBSetup value.
func ParseDBSetup(s string) (DBSetup, error) {
	v := DBSetup(s)
	if !v.IsValid() {
		return DBSetupNone, fmt.Errorf("unknown database setup %q", s)
	}
	return v, nil
}

// API identifies the RPC flavor wiring frontend to backend.
type API string

const (
	// APITRPC is tRPC.
	APITRPC API = "trpc"

	// APIORPC is oRPC.
	APIORPC API = "orpc"

	// APINone means no typed API layer is generated.
	APINone API = "none"
)

// AllAPIs returns the API values in canonical order.
func AllAPIs() []API {
	return []API{APITRPC, APIORPC, APINone}
}

// IsValid checks if the API kind is a valid value.
func (a API) IsValid() bool {
	switch a {
	case APITRPC, APIORPC, APINone:
		return true
	}
	return false
}

// ParseAPI maps user input to an API value.
func ParseAPI(s string) (API, error) {
	a := API(s)
	if !a.IsValid() {
		return APINone, fmt.Errorf("unknown api %q", s)
	}
	return a, nil
}

// PackageManager identifies the package manager used for the generated
// workspace and for the optional dependency install step.
type PackageManager string

const (
	// PackageManagerNpm is npm.
	PackageManagerNpm PackageManager = "npm"

	// PackageManagerPnpm is pnpm.
	PackageManagerPnpm PackageManager = "pnpm"

	// PackageManagerBun is bun.
	PackageManagerBun PackageManager = "bun"
)

// AllPackageManagers returns the package manager values in canonical order.
func AllPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNpm, PackageManagerPnpm, PackageManagerBun}
}

// IsValid checks if the package manager is a valid value.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNpm, PackageManagerPnpm, PackageManagerBun:
		return true
	}
	return false
}

// RunCommand returns the prefix for running a package.json script.
func (p PackageManager) RunCommand() string {
	if p == PackageManagerNpm {
		return "npm run"
	}
	return string(p)
}

// ExecCommand returns the package runner command (npx equivalent).
func (p PackageManager) ExecCommand() string {
	switch p {
	case PackageManagerPnpm:
		return "pnpm dlx"
	case PackageManagerBun:
		return "bunx"
	default:
		return "npx"
	}
}

// ParsePackageManager maps user input to a PackageManager value.
func ParsePackageManager(s string) (PackageManager, error) {
	p := PackageManager(s)
	if !p.IsValid() {
		return PackageManagerNpm, fmt.Errorf("unknown package manager %q", s)
	}
	return p, nil
}

// Addon identifies an independently gated add-on layer.
type Addon string

const (
	// AddonPWA adds progressive web app support. Requires a compatible
	// web frontend; silently skipped otherwise.
	AddonPWA Addon = "pwa"

	// AddonBiome adds Biome lint/format configuration.
	AddonBiome Addon = "biome"

	// AddonHusky adds Husky git hooks.
	AddonHusky Addon = "husky"
)

// AllAddons returns the add-on values in canonical order.
func AllAddons() []Addon {
	return []Addon{AddonPWA, AddonBiome, AddonHusky}
}

// IsValid checks if the add-on is a valid value.
func (a Addon) IsValid() bool {
	switch a {
	case AddonPWA, AddonBiome, AddonHusky:
		return true
	}
	return false
}

// ParseAddon maps user input to an Addon value.
func ParseAddon(s string) (Addon, error) {
	a := Addon(s)
	if !a.IsValid() {
		return "", fmt.Errorf("unknown addon %q", s)
	}
	return a, nil
}

// Example identifies an example application layer.
type Example string

const (
	// ExampleTodo is a CRUD todo example.
	ExampleTodo Example = "todo"

	// ExampleAI is a minimal AI chat example.
	ExampleAI Example = "ai"
)

// AllExamples returns the example values in canonical order.
func AllExamples() []Example {
	return []Example{ExampleTodo, ExampleAI}
}

// IsValid checks if the example is a valid value.
func (e Example) IsValid() bool {
	switch e {
	case ExampleTodo, ExampleAI:
		return true
	}
	return false
}

// ParseExample maps user input to an Example value.
func ParseExample(s string) (Example, error) {
	e := Example(s)
	if !e.IsValid() {
		return "", fmt.Errorf("unknown example %q", s)
	}
	return e, nil
}

// Deployment identifies the deployment target for the web frontend.
type Deployment string

const (
	// DeploymentWrangler targets Cloudflare Workers via wrangler.
	DeploymentWrangler Deployment = "wrangler"

	// DeploymentNone skips deployment templates.
	DeploymentNone Deployment = "none"
)

// AllDeployments returns the deployment values in canonical order.
func AllDeployments() []Deployment {
	return []Deployment{DeploymentWrangler, DeploymentNone}
}

// IsValid checks if the deployment target is a valid value.
func (d Deployment) IsValid() bool {
	switch d {
	case DeploymentWrangler, DeploymentNone:
		return true
	}
	return false
}

// ParseDeployment maps user input to a Deployment value.
func ParseDeployment(s string) (Deployment, error) {
	d := Deployment(s)
	if !d.IsValid() {
		return DeploymentNone, fmt.Errorf("unknown deployment target %q", s)
	}
	return d, nil
}
