package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"techblog/pkg/models"
)

// GitHubAvatarURL returns the avatar image GitHub serves for username.
func GitHubAvatarURL(username string, size int) string {
	return fmt.Sprintf("https://github.com/%s.png?size=%d", username, size)
}

var builtinAuthors = []models.Author{
	{Name: "@nazar-pc", FullName: "Nazar Mokrynskyi", GitHub: "nazar-pc"},
	{Name: "@ytocquet", FullName: "Yann Tocquet", GitHub: "ytmusic"},
	{Name: "@LITUATUI", FullName: "LITUATUI", GitHub: "LITUATUI"},
	{Name: "@tonystrawberry", FullName: "Tony Duong", GitHub: "tonystrawberry"},
}

// AuthorDirectory answers author lookups for article bylines.
type AuthorDirectory struct {
	authors []models.Author
}

// NewAuthorDirectory fills in missing avatars from the GitHub username.
func NewAuthorDirectory(authors []models.Author) *AuthorDirectory {
	list := make([]models.Author, len(authors))
	for i, a := range authors {
		if a.Avatar == "" && a.GitHub != "" {
			a.Avatar = GitHubAvatarURL(a.GitHub, 100)
		}
		list[i] = a
	}
	return &AuthorDirectory{authors: list}
}

// LoadAuthors reads a YAML list of authors; an empty path yields the built-in table.
func LoadAuthors(path string) (*AuthorDirectory, error) {
	if path == "" {
		return NewAuthorDirectory(builtinAuthors), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var authors []models.Author
	if err := yaml.Unmarshal(content, &authors); err != nil {
		return nil, fmt.Errorf("parse authors %s: %w", path, err)
	}
	return NewAuthorDirectory(authors), nil
}

func (d *AuthorDirectory) Authors() []models.Author {
	return d.authors
}

func (d *AuthorDirectory) AuthorByName(name string) (models.Author, bool) {
	for _, a := range d.authors {
		if a.Name == name {
			return a, true
		}
	}
	return models.Author{}, false
}

func (d *AuthorDirectory) AuthorAvatar(name string) string {
	a, _ := d.AuthorByName(name)
	return a.Avatar
}
