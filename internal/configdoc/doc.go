package configdoc

// Package configdoc defines the three configuration documents consumed by the
// cryoCARE pipeline programs, their JSON encoding and the atomic save.
