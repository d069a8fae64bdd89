package port

// Stemmer reduces a surface word to the key it is indexed under.
type Stemmer interface {
	Stem(word string) string
}
