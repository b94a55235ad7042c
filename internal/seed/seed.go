// Package seed populates the database with demo content for local
// development.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"blogicum/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	categories = []models.Category{
		{Slug: "travel", Title: "Travel", Description: "Trips, routes and places worth the detour.", IsPublished: true},
		{Slug: "food", Title: "Food", Description: "Recipes, restaurants and kitchen experiments.", IsPublished: true},
		{Slug: "tech", Title: "Tech", Description: "Software, hardware and everything in between.", IsPublished: true},
		{Slug: "books", Title: "Books", Description: "Reading notes and recommendations.", IsPublished: true},
		{Slug: "drafts-club", Title: "Drafts Club", Description: "A hidden category for works in progress.", IsPublished: false},
	}

	locations = []models.Location{
		{Name: "Amsterdam"},
		{Name: "Lisbon"},
		{Name: "Tbilisi"},
		{Name: "Kyoto"},
		{Name: "Buenos Aires"},
	}

	usernames = []string{
		"wanderer_kate", "chef_milo", "bitwise_anna", "paperback_joe", "quiet_nora",
		"route66_sam", "sourdough_lena", "kernel_pavel", "margin_notes_iris", "late_night_dev",
	}

	postTitles = []string{
		"Three days in the old town with no map",
		"The only bread recipe I still use",
		"What I learned rewriting our billing service",
		"A reading list for long train rides",
		"Street food that ruined restaurants for me",
		"Why I keep a paper notebook next to my keyboard",
		"The mountain pass that was closed anyway",
		"Fermentation for impatient people",
		"Notes from a month without social media",
		"The bookshop at the end of the tram line",
		"How we cut our deploy time in half",
		"A soup for the first cold week of autumn",
	}

	postTexts = []string{
		"I left the phone in the hostel and just walked. Got lost twice, found a courtyard concert once. Net positive.",
		"Flour, water, salt, patience. Mostly patience. The full schedule and the two mistakes everyone makes are below.",
		"Six months, two rollbacks, one very long postmortem. Here is what I would do differently from day one.",
		"Nothing over four hundred pages, nothing that needs a desk. Tested across four countries and one delayed ferry.",
		"There is a stall behind the market that only opens after ten. Order whatever the person in front of you ordered.",
		"The notebook never runs out of battery and never shows me notifications. That turns out to matter a lot.",
		"We drove up anyway. The barrier was down, the view from the barrier was still worth the drive.",
		"You do not need a cellar or a crock. A jar, a windowsill and five days will get you most of the way.",
		"Week one was twitchy. Week three was quiet in a way I had forgotten existed. Week four I started writing again.",
		"It has no sign and no website. The owner will judge your purchase and she will usually be right.",
		"Spoiler: it was not a new tool, it was deleting a third of the pipeline nobody could explain.",
		"Roast the vegetables first. That is the entire secret, the rest is just hot water and time.",
	}

	commentTexts = []string{
		"Adding this to the list for next spring, thank you!",
		"Tried it over the weekend and it actually worked on the first attempt.",
		"Strongly disagree about the second point but the rest is spot on.",
		"Which neighborhood was this in? Asking for an upcoming trip.",
		"This is the push I needed to finally try it myself.",
		"Saved. My previous attempts all failed at exactly the step you describe.",
		"Beautiful writing. The bit about the courtyard made my day.",
		"We hit the same problem last year and solved it the ugly way.",
	}
)

// Seed wipes existing content and loads the demo dataset. All demo users
// share the password "password123".
func Seed(db *gorm.DB) error {
	log.Println("🌱 Starting database seeding...")

	if err := clearData(db); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("✓ Created %d categories", len(categories))

	if err := db.Create(&locations).Error; err != nil {
		return fmt.Errorf("failed to create locations: %w", err)
	}
	log.Printf("✓ Created %d locations", len(locations))

	users, err := createUsers(db)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ Created %d users", len(users))

	posts, err := createPosts(db, users)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ Created %d posts", len(posts))

	count, err := createComments(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ Created %d comments", count)

	log.Println("✨ Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Comments first for the FK order.
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.Category{}, &models.Location{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(usernames))
	for _, username := range usernames {
		users = append(users, models.User{
			Username: username,
			Email:    username + "@example.com",
			Password: string(hashed),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User) ([]models.Post, error) {
	now := time.Now()
	posts := make([]models.Post, 0, len(postTitles))

	for i, title := range postTitles {
		author := users[i%len(users)]
		categoryID := categories[i%len(categories)].ID
		locationID := locations[i%len(locations)].ID

		post := models.Post{
			Title:       title,
			Text:        postTexts[i%len(postTexts)],
			PubDate:     now.Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
			IsPublished: true,
			AuthorID:    author.ID,
			CategoryID:  &categoryID,
			LocationID:  &locationID,
		}
		// A few scheduled and withdrawn posts so the visibility rules have
		// something to hide.
		switch i % 6 {
		case 4:
			post.PubDate = now.Add(time.Duration(1+rand.Intn(14*24)) * time.Hour)
		case 5:
			post.IsPublished = false
		}
		posts = append(posts, post)
	}

	if err := db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []models.User, posts []models.Post) (int, error) {
	count := 0
	for _, post := range posts {
		for n := rand.Intn(4); n > 0; n-- {
			commenter := users[rand.Intn(len(users))]
			comment := models.Comment{
				Text:     commentTexts[rand.Intn(len(commentTexts))],
				AuthorID: commenter.ID,
				PostID:   post.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
