package models

// LinkUnavailable is the URL value marking an action link as not available
const LinkUnavailable = "#"

// ProjectRecord represents a portfolio project card
type ProjectRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	Image       string   `json:"image" yaml:"image"`
	LiveLink    string   `json:"live_link" yaml:"live_link"`
	RepoLink    string   `json:"repo_link" yaml:"repo_link"`
}

// LinkAvailable reports whether url points somewhere. Empty and "#" do not.
func LinkAvailable(url string) bool {
	return url != "" && url != LinkUnavailable
}

// HasLiveLink reports whether the live demo link points somewhere
func (p ProjectRecord) HasLiveLink() bool {
	return LinkAvailable(p.LiveLink)
}

// HasRepoLink reports whether the source repository link points somewhere
func (p ProjectRecord) HasRepoLink() bool {
	return LinkAvailable(p.RepoLink)
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []ProjectRecord `json:"projects" yaml:"projects"`
}
