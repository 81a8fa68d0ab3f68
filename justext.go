// Package justext separates main content from boilerplate in HTML pages.
// It segments a page into textually uniform paragraphs, classifies each
// paragraph using stopword density, link density and length, and then
// revises the classification based on the classes of neighbouring
// paragraphs, following the jusText algorithm.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, stoplists/).
package justext
