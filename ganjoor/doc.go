// Package ganjoor provides an HTTP client for the Ganjoor poetry archive API.
//
// # Overview
//
// The package turns the archive's JSON responses into typed values: poets,
// categories, poems, verses, recitations, images, songs and comments. A single
// Client carries the base URL, the localization tag, the client application name
// and, after Login, a bearer token.
//
// # Client Usage
//
//	client, err := ganjoor.NewClient(ganjoor.WithLogger(logger))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	poem, err := client.PoemByID(ctx, 2130, ganjoor.CompletePoem)
//	if err != nil {
//		log.Printf("poem fetch failed: %v", err)
//	}
//	fmt.Println(poem.FullTitle)
//	fmt.Println(poem)
//
// # Key Normalization
//
// The server speaks camelCase. Every object is decoded by first passing its keys
// through Underscore, so struct tags use snake_case names:
//
//   - ganjoorMetre → ganjoor_metre
//   - mp3FileCheckSum → mp3_file_check_sum
//   - vOrder → v_order
//
// Unknown keys are ignored unless the client is built with WithStrictDecoding, in
// which case hydration fails and names the first offending key.
//
// # Hydration
//
// Scalar fields are plain struct fields. Nested entities stay as raw JSON inside
// the value and are hydrated by accessor methods on each call:
//
//   - Poem: Metre, Category, Poet, Verses, Recitations, Images, Songs, Comments,
//     Next, Previous
//   - Category: Children, Poems, Next, Previous, Ancestors, Poet
//   - Poet: Category
//   - Comment: Replies
//
// Each call returns a fresh value, so identity is never shared across calls. Null
// or missing collections come back as empty slices; missing singletons come back
// as nil. Nested payloads are validated once at construction, which is why the
// accessors have no error return.
//
// Poem navigation (Next, Previous) and category poem listings are IncompletePoem
// summaries. Following one costs an explicit PoemByID call; hydration never
// fetches.
//
// # API Endpoints
//
//   - GET  /api/ganjoor/poets
//   - GET  /api/ganjoor/poet/{id}, /api/ganjoor/poet?url=
//   - GET  /api/ganjoor/cat/{id}?poems=, /api/ganjoor/cat?url=&poems=
//   - GET  /api/ganjoor/poem/{id}, /api/ganjoor/poem?url=
//   - GET  /api/ganjoor/poem/random, /api/ganjoor/hafez/faal
//   - GET  /api/ganjoor/poems/similar, /api/ganjoor/poems/search
//   - GET  /api/ganjoor/poem/{id}/{recitations,images,songs,comments}
//   - POST /api/users/login
//   - GET  /api/ganjoor/bookmark (bearer token)
//
// Poet and category lookups answer with two sibling objects, "poet" and "cat".
// Both are kept: a Poet from PoetByID can produce its Category, and a Category
// from CategoryByID can produce its Poet.
//
// # Error Handling
//
//   - *RemoteRequestError: any status other than 200, with the status code and the
//     server's reason phrase
//   - ErrNotLoggedIn: an authenticated call on a client without a token; no
//     request is sent
//   - Wrapped transport errors: "execute request: dial tcp: connection refused"
//   - Wrapped decode errors: "decode response: verses: item 3: ..."
//
// There are no retries and no partial results.
//
// # Thread Safety
//
// Read-only calls may run concurrently once the client is built. Login and Logout
// mutate the token without locking.
package ganjoor
