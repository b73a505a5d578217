// Package romlocate matches curated titles against ROM file names.
//
// Matching normalizes both sides (bracket tags stripped, diacritics folded,
// punctuation and stop words removed) and scores candidates with a token-set
// heuristic. Selection is deterministic for a fixed directory listing.
package romlocate
