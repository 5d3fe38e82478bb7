// Package prescription holds the static comfort table and the schema every
// prescription must satisfy, whichever source produced it.
package prescription

import (
	"fmt"

	"github.com/blaisecz/comfort-census/internal/domain"
)

type tableKey struct {
	mood    domain.MoodState
	comfort domain.ComfortType
}

// table must hold an entry for every mood x comfort pair; table_test.go enforces it.
var table = map[tableKey]domain.Recommendation{
	{domain.MoodEnergized, domain.ComfortWarmth}: {
		Title:       "Energizing Nourishment",
		Description: "You're buzzing with energy! Let's fuel that spark with something vibrant.",
		Suggestions: []string{
			"Try a citrus-ginger smoothie with honey and turmeric",
			"Whip up avocado toast with everything bagel seasoning",
			"Make a colorful Buddha bowl with roasted chickpeas",
		},
		LinkText: "Open the Sunny Pantry",
		LinkURL:  "/pantry/energizing-bites",
	},
	{domain.MoodEnergized, domain.ComfortStillness}: {
		Title:       "Channeled Energy",
		Description: "Your energy is high, but you're seeking focus. Let's create centered vibrancy.",
		Suggestions: []string{
			"Try a 10-minute walking meditation in nature",
			"Listen to uplifting instrumental music (try lo-fi beats)",
			"Practice energizing yoga flows like sun salutations",
		},
		LinkText: "Find Your Focus Corner",
		LinkURL:  "/nook/focus-flow",
	},
	{domain.MoodEnergized, domain.ComfortDistraction}: {
		Title:       "Creative Outlet",
		Description: "Your mind is ready for action! Channel that energy into something fun.",
		Suggestions: []string{
			"Start a quick origami project",
			"Try your hand at speed sketching or doodling",
			"Organize and redecorate a small space in your home",
		},
		LinkText: "Visit the Craft Table",
		LinkURL:  "/playroom/quick-crafts",
	},
	{domain.MoodCalm, domain.ComfortWarmth}: {
		Title:       "Cozy Comfort",
		Description: "You're in a peaceful place. Let's enhance that gentle warmth.",
		Suggestions: []string{
			"Make chamomile tea with honey and a splash of vanilla",
			"Try warm milk with cinnamon and nutmeg",
			"Bake simple honey cookies or banana bread",
		},
		LinkText: "Warm Up in the Tea Room",
		LinkURL:  "/pantry/cozy-cups",
	},
	{domain.MoodCalm, domain.ComfortStillness}: {
		Title:       "Deep Tranquility",
		Description: "You're centered and calm. Let's deepen that beautiful peace.",
		Suggestions: []string{
			"Try a guided meditation (15 minutes of body scan)",
			"Listen to nature sounds or ambient music",
			"Practice gentle stretching or restorative yoga",
		},
		LinkText: "Rest in the Quiet Garden",
		LinkURL:  "/nook/quiet-garden",
	},
	{domain.MoodCalm, domain.ComfortDistraction}: {
		Title:       "Gentle Engagement",
		Description: "You're calm and ready for something soothing to focus on.",
		Suggestions: []string{
			"Work on a simple puzzle or coloring book",
			"Browse cozy home decor inspiration online",
			"Curate a relaxing playlist for future use",
		},
		LinkText: "Browse the Puzzle Shelf",
		LinkURL:  "/playroom/gentle-puzzles",
	},
	{domain.MoodNeutral, domain.ComfortWarmth}: {
		Title:       "Comfort Exploration",
		Description: "You're in a neutral space. Let's discover what feels good right now.",
		Suggestions: []string{
			"Try a new herbal tea blend you haven't tasted before",
			"Make a simple grilled cheese with tomato soup",
			"Bake mug brownies (ready in 5 minutes!)",
		},
		LinkText: "Explore the Comfort Kitchen",
		LinkURL:  "/pantry/new-favorites",
	},
	{domain.MoodNeutral, domain.ComfortStillness}: {
		Title:       "Mindful Reset",
		Description: "Sometimes neutral is perfect. Let's create a gentle moment of presence.",
		Suggestions: []string{
			"Try a 5-minute breathing exercise (box breathing)",
			"Listen to binaural beats or soundscapes",
			"Practice mindful observation of your surroundings",
		},
		LinkText: "Take a Breathing Break",
		LinkURL:  "/nook/box-breathing",
	},
	{domain.MoodNeutral, domain.ComfortDistraction}: {
		Title:       "Easy Discovery",
		Description: "You're open to possibilities. Let's explore something new and simple.",
		Suggestions: []string{
			"Try a simple craft tutorial on YouTube",
			"Play a calming mobile puzzle game",
			"Rearrange your bookshelf or photo collection",
		},
		LinkText: "Wander the Discovery Hall",
		LinkURL:  "/playroom/easy-discovery",
	},
	{domain.MoodTired, domain.ComfortWarmth}: {
		Title:       "Gentle Nourishment",
		Description: "You need extra softness right now. Let's provide easy, warming comfort.",
		Suggestions: []string{
			"Make instant hot chocolate with marshmallows",
			"Heat up easy soup (no-cook comfort)",
			"Warm milk with honey and lavender",
		},
		LinkText: "Grab Something Warm",
		LinkURL:  "/pantry/easy-warmth",
	},
	{domain.MoodTired, domain.ComfortStillness}: {
		Title:       "Restorative Rest",
		Description: "Your body is asking for deep rest. Let's create the perfect sanctuary.",
		Suggestions: []string{
			"Try a 20-minute guided meditation for sleep",
			"Listen to soft piano music or rain sounds",
			"Practice legs-up-the-wall yoga pose (10 minutes)",
		},
		LinkText: "Open the Sleep Guide",
		LinkURL:  "/nook/sleep-guide",
	},
	{domain.MoodTired, domain.ComfortDistraction}: {
		Title:       "Low-Energy Comfort",
		Description: "You need something engaging but effortless. Let's keep it easy.",
		Suggestions: []string{
			"Watch feel-good comedy clips or sitcom episodes",
			"Browse comforting images (cozy cabins, cute animals)",
			"Listen to a relaxing podcast or audiobook",
		},
		LinkText: "Curl Up in the Screening Room",
		LinkURL:  "/playroom/feel-good",
	},
}

// Lookup returns the static prescription for mood and comfort. The result is a
// copy; callers may modify it freely.
func Lookup(mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
	rec, ok := table[tableKey{mood, comfort}]
	if !ok {
		return domain.Recommendation{}, fmt.Errorf("%w: mood=%q comfort=%q", domain.ErrUnknownCombination, mood, comfort)
	}
	return rec.Clone(), nil
}
