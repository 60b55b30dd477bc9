package sqlite

import _ "embed"

// Schema DDL for the slots table. Each named slot holds one opaque
// serialized blob plus a version counter bumped on every write.
//
//go:embed schema.sql
var createSlots string
