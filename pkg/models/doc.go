// Package models provides the shared option enums for stackforge.
//
// Every axis of a generated project (frontend, backend, database, ORM,
// authentication, add-ons, examples, package manager, deployment target)
// is a closed enum type defined here, so an invalid choice is a parse-time
// concern rather than something the template engine has to defend against.
//
// Each enum follows the same pattern:
//   - string-backed type with exported constants
//   - IsValid() reporting membership
//   - All<Type>() returning the canonical ordered value list
//   - Parse<Type>() mapping user input to a value or an error
//
// "None"-capable axes reserve an explicit none value (e.g. [BackendNone],
// [DatabaseNone]) so downstream layer resolution never deals with absence.
package models
