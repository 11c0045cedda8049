package model

// Package model defines the data exchanged with the conversion service: job
// status snapshots, preview payloads, search results, the UI mode and the
// bitrate options. Optional wire fields are pointers so that an absent value
// can be told apart from a zero value.
