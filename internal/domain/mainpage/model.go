package mainpage

// Config is the single record controlling the home page. Featured news ids
// reference published articles; dangling ids are skipped at render time.
type Config struct {
	FeaturedNewsIDs []int64
}
