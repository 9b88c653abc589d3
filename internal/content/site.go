package content

import "valhalla/internal/utils"

type NavLink struct {
	Label string
	Href  string
}

// Navigation is the header menu, in display order.
var Navigation = []NavLink{
	{Label: "Programs", Href: "/#program"},
	{Label: "Forum", Href: "/#forum"},
	{Label: "Threads", Href: "/forum"},
	{Label: "About", Href: "/#about"},
}

type HeroSection struct {
	Heading  string
	Lines    []string
	Question string
	CTA      string
	CTAHref  string
}

var Hero = HeroSection{
	Heading:  "Forge Your Legend",
	Lines:    []string{"Defy the odds. Test thy spirit.", "Unbridle thy potential."},
	Question: "Are you worthy?",
	CTA:      "Explore the Program",
	CTAHref:  "#program",
}

type Image struct {
	Src string
	Alt string
}

var GalleryImages = []Image{
	{Src: "/static/assets/gallery1.jpg", Alt: "Training Session 1"},
	{Src: "/static/assets/gallery2.jpg", Alt: "Training Session 2"},
	{Src: "/static/assets/gallery3.jpg", Alt: "Training Session 3"},
	{Src: "/static/assets/gallery4.jpg", Alt: "Training Session 4"},
	{Src: "/static/assets/gallery5.jpg", Alt: "Training Session 5"},
	{Src: "/static/assets/gallery6.jpg", Alt: "Training Session 6"},
}

// GallerySlide is the carousel state for one render.
type GallerySlide struct {
	Images  []Image
	Current int
	Prev    int
	Next    int
}

// Gallery selects slide i, wrapping past either end.
func Gallery(i int) GallerySlide {
	n := len(GalleryImages)
	cur := utils.WrapIndex(i, n)
	return GallerySlide{
		Images:  GalleryImages,
		Current: cur,
		Prev:    utils.WrapIndex(cur-1, n),
		Next:    utils.WrapIndex(cur+1, n),
	}
}

type AboutSection struct {
	Heading    string
	Paragraphs []string
}

var About = AboutSection{
	Heading: "About the Creator",
	Paragraphs: []string{
		"I'm Samarth Vats, from Dehradun. And I built Projekt Valhalla because fitness gave me more than anyone or anything else ever could.",
		"But this isn't some success story. I still fight doubt every day. I still wrestle with fear, with that voice that says I'm not good enough, that I don't belong. The difference is, now I know how to fight back.",
		"Fitness became my battleground - the place where I learned to push through when everything in me wanted to quit. Where I discovered that the strongest muscle you can build is your mind. Projekt Valhalla exists because I refuse to accept that mediocrity is inevitable.",
		"This isn't another fitness program. It's a challenge. Are you tired of being held back by your own limitations? Are you ready to face what breaks others?",
		"I'm not here to sell you comfort or promise easy results. I'm here to ask one question: Do you have what it takes to become who you're supposed to be?",
	},
}

// GateHint is revealed after repeated failed passkey attempts.
const GateHint = "What truth lies on the lips of the valiant?"
