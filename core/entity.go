package core

// Entity is a unique identifier for a (cell, unit) pair in the world; 0 is never issued
type Entity uint64
