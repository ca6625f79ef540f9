package plot

// Recommender picks a chart kind for a table when the caller gives none.
type Recommender interface {
	Recommend(frame Frame) Type
}

// RecommenderFunc adapts a function to Recommender.
type RecommenderFunc func(frame Frame) Type

// Recommend implements Recommender.
func (f RecommenderFunc) Recommend(frame Frame) Type {
	return f(frame)
}

// DefaultRecommender always recommends a bar chart. It does not inspect the table.
type DefaultRecommender struct{}

// Recommend implements Recommender.
func (DefaultRecommender) Recommend(Frame) Type {
	return TypeBar
}

var _ Recommender = DefaultRecommender{}
