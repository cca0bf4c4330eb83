// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: the Joke record and its listing/query value objects
//   - Storage errors: the closed StoreError variant set returned by the
//     persistence layer and translated to HTTP by the response package
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
