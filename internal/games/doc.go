// Package games turns a title's static content tables into a Provider the
// host can query for objective templates.
//
// Every title is described by a Title value: its inclusion options, its
// data sources and an ordered list of categories. A category is gated by
// requirements over the title's options and assembles its templates on
// demand. One generic Provider serves every title; titles only contribute
// data.
package games
