// Package views holds one model per screen of the DevPair client.
//
// A view is loaded with Load (Loading reports one in flight), exposes
// what it fetched through exported fields and accessors, and offers
// mutations that validate their form, submit it and then re-fetch.
// Nothing here renders; the cli package prints views.
//
// Each view declares the slice of the API it needs, so tests can fake
// exactly that and *client.HTTPClient satisfies all of them.
package views
