package store

import (
	"encoding/json"
	"os"

	"book-review-service/internal/models"
)

// DefaultBooks is the catalog shipped when no seed file is configured.
func DefaultBooks() []models.Book {
	return []models.Book{
		{ISBN: "978-0-385-47454-2", Title: "Things Fall Apart", Author: "Chinua Achebe"},
		{ISBN: "978-1-85326-100-9", Title: "Fairy Tales", Author: "Hans Christian Andersen"},
		{ISBN: "978-0-14-044895-2", Title: "The Divine Comedy", Author: "Dante Alighieri"},
		{ISBN: "978-0-14-044100-7", Title: "The Epic of Gilgamesh", Author: "Unknown"},
		{ISBN: "978-0-19-283562-3", Title: "The Book of Job", Author: "Unknown"},
		{ISBN: "978-0-14-044289-9", Title: "One Thousand and One Nights", Author: "Unknown"},
		{ISBN: "978-0-14-044769-6", Title: "Njal's Saga", Author: "Unknown"},
		{ISBN: "978-0-14-143951-8", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{ISBN: "978-0-14-143955-6", Title: "Wuthering Heights", Author: "Emily Bronte"},
		{ISBN: "978-0-14-118520-0", Title: "In Search of Lost Time", Author: "Marcel Proust"},
	}
}

// LoadBooksFile reads a JSON array of books from path.
func LoadBooksFile(path string) ([]models.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}
