package services

import (
	"github.com/alimgiray/gexplore/internal/models"
	"github.com/google/uuid"
)

const defaultRepositoryName = "microsoft/vscode"

// notificationNamespace derives stable notification IDs from their messages
var notificationNamespace = uuid.MustParse("6f1d2c3e-8a4b-4c5d-9e6f-7a8b9c0d1e2f")

var categories = []string{
	"AI", "Web", "Mobile", "Game Dev", "DevOps", "Data Science",
	"Machine Learning", "Blockchain", "Cloud", "Security", "Frontend", "Backend",
}

var recommendations = []models.Recommendation{
	{
		Name:        "microsoft/vscode",
		Description: "Visual Studio Code",
		Stars:       162000,
		Language:    "TypeScript",
		Tags:        []string{"editor", "ide"},
	},
	{
		Name:        "vercel/next.js",
		Description: "The React Framework",
		Stars:       124000,
		Language:    "JavaScript",
		Tags:        []string{"react", "framework"},
	},
	{
		Name:        "openai/whisper",
		Description: "Robust Speech Recognition",
		Stars:       67000,
		Language:    "Python",
		Tags:        []string{"ai", "speech"},
	},
}

var trendingRepositories = map[models.TrendingPeriod][]models.TrendingRepository{
	models.TrendingDaily: {
		{Name: "microsoft/copilot", Description: "Your AI pair programmer", Stars: 89000, Forks: 12000, Language: "Python", Trend: "+1,234 stars today"},
		{Name: "facebook/react", Description: "The library for web and native user interfaces", Stars: 228000, Forks: 46000, Language: "JavaScript", Trend: "+892 stars today"},
		{Name: "pytorch/pytorch", Description: "Tensors and Dynamic neural networks in Python", Stars: 82000, Forks: 22000, Language: "C++", Trend: "+756 stars today"},
		{Name: "tailwindlabs/tailwindcss", Description: "A utility-first CSS framework", Stars: 82000, Forks: 4100, Language: "CSS", Trend: "+634 stars today"},
	},
	models.TrendingWeekly: {
		{Name: "openai/chatgpt", Description: "Official ChatGPT API wrapper", Stars: 156000, Forks: 18000, Language: "Python", Trend: "+8,456 stars this week"},
		{Name: "vercel/next.js", Description: "The React Framework for Production", Stars: 124000, Forks: 26400, Language: "JavaScript", Trend: "+5,234 stars this week"},
		{Name: "microsoft/vscode", Description: "Visual Studio Code", Stars: 162000, Forks: 28500, Language: "TypeScript", Trend: "+4,567 stars this week"},
		{Name: "tensorflow/tensorflow", Description: "An Open Source Machine Learning Framework", Stars: 185000, Forks: 74000, Language: "C++", Trend: "+3,890 stars this week"},
	},
	models.TrendingMonthly: {
		{Name: "microsoft/playwright", Description: "Playwright is a framework for Web Testing and Automation", Stars: 65000, Forks: 3500, Language: "TypeScript", Trend: "+12,345 stars this month"},
		{Name: "denoland/deno", Description: "A modern runtime for JavaScript and TypeScript", Stars: 94000, Forks: 5200, Language: "Rust", Trend: "+9,876 stars this month"},
		{Name: "vitejs/vite", Description: "Next generation frontend tooling", Stars: 67000, Forks: 6000, Language: "TypeScript", Trend: "+8,234 stars this month"},
		{Name: "supabase/supabase", Description: "The open source Firebase alternative", Stars: 72000, Forks: 6900, Language: "TypeScript", Trend: "+7,123 stars this month"},
	},
}

var developers = []models.Developer{
	{
		Name:      "Linus Torvalds",
		Handle:    "torvalds",
		Avatar:    "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Location:  "Portland, OR",
		Followers: "156k",
		Bio:       "Creator of Linux and Git",
	},
	{
		Name:      "Dan Abramov",
		Handle:    "gaearon",
		Avatar:    "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Location:  "London, UK",
		Followers: "245k",
		Bio:       "React core team member",
	},
	{
		Name:      "Sindre Sorhus",
		Handle:    "sindresorhus",
		Avatar:    "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Location:  "Stockholm, Sweden",
		Followers: "89k",
		Bio:       "Open source maintainer",
	},
}

var trendingTopics = []models.TrendingTopic{
	{Name: "artificial-intelligence", Repos: "2.3k"},
	{Name: "react", Repos: "890k"},
	{Name: "typescript", Repos: "456k"},
	{Name: "python", Repos: "1.2M"},
	{Name: "machine-learning", Repos: "678k"},
}

var followSuggestions = []models.FollowSuggestion{
	{
		Name:   "Alex Johnson",
		Handle: "alexjohnson",
		Avatar: "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=40&h=40&fit=crop",
		Reason: "Popular in AI",
	},
	{
		Name:   "Sarah Chen",
		Handle: "sarahchen",
		Avatar: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=40&h=40&fit=crop",
		Reason: "JavaScript expert",
	},
	{
		Name:   "Mike Davis",
		Handle: "mikedavis",
		Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=40&h=40&fit=crop",
		Reason: "Python developer",
	},
}

var notifications = []models.Notification{
	newNotification("New star on your repository", "2 hours ago"),
	newNotification("Someone followed you", "1 day ago"),
}

func newNotification(message, age string) models.Notification {
	return models.Notification{
		ID:      uuid.NewSHA1(notificationNamespace, []byte(message)).String(),
		Message: message,
		Age:     age,
	}
}

var profileRepositories = []models.ProfileRepository{
	{Name: "awesome-project", Description: "A really awesome project built with React and TypeScript", Language: "TypeScript", Stars: 234, Forks: 45, Updated: "2 days ago"},
	{Name: "my-portfolio", Description: "Personal portfolio website", Language: "JavaScript", Stars: 12, Forks: 3, Updated: "1 week ago"},
	{Name: "secret-project", Description: "Top secret development project", Language: "Python", Stars: 0, Forks: 0, Updated: "3 days ago", Private: true},
	{Name: "learning-rust", Description: "Learning Rust programming language", Language: "Rust", Stars: 5, Forks: 1, Updated: "5 days ago"},
}

const (
	profileProjectsCount = 8
	profilePackagesCount = 3
)

var repositoryFeatures = []string{
	"IntelliSense code completion",
	"Built-in Git integration",
	"Extensive extension marketplace",
	"Integrated terminal",
	"Debugging support",
}

var repositoryDetails = map[string]models.RepositoryDetail{
	"microsoft/vscode": {
		Name:            "microsoft/vscode",
		Description:     "Visual Studio Code",
		FullDescription: "Visual Studio Code is a lightweight but powerful source code editor which runs on your desktop and is available for Windows, macOS and Linux. It comes with built-in support for JavaScript, TypeScript and Node.js and has a rich ecosystem of extensions for other languages and runtimes.",
		Stars:           162000,
		Forks:           28500,
		Watchers:        3200,
		Language:        "TypeScript",
		Languages: []models.LanguageShare{
			{Name: "TypeScript", Percent: 45},
			{Name: "JavaScript", Percent: 25},
			{Name: "CSS", Percent: 15},
			{Name: "HTML", Percent: 10},
			{Name: "Other", Percent: 5},
		},
		License:      "MIT",
		LastUpdated:  "2 hours ago",
		Size:         "245 MB",
		Topics:       []string{"editor", "ide", "typescript", "javascript", "electron"},
		Contributors: 1847,
		Releases:     156,
		Issues:       5234,
		PullRequests: 234,
	},
	"vercel/next.js": {
		Name:            "vercel/next.js",
		Description:     "The React Framework",
		FullDescription: "Next.js is a React framework that gives you building blocks to create web applications. By framework, we mean Next.js handles the tooling and configuration needed for React, and provides additional structure, features, and optimizations for your application.",
		Stars:           124000,
		Forks:           26400,
		Watchers:        2100,
		Language:        "JavaScript",
		Languages: []models.LanguageShare{
			{Name: "JavaScript", Percent: 55},
			{Name: "TypeScript", Percent: 30},
			{Name: "CSS", Percent: 8},
			{Name: "HTML", Percent: 5},
			{Name: "Other", Percent: 2},
		},
		License:      "MIT",
		LastUpdated:  "4 hours ago",
		Size:         "189 MB",
		Topics:       []string{"react", "framework", "nextjs", "vercel", "ssr"},
		Contributors: 2156,
		Releases:     89,
		Issues:       1876,
		PullRequests: 156,
	},
	"openai/whisper": {
		Name:            "openai/whisper",
		Description:     "Robust Speech Recognition",
		FullDescription: "Whisper is a general-purpose speech recognition model. It is trained on a large dataset of diverse audio and is also a multitasking model that can perform multilingual speech recognition, speech translation, and language identification.",
		Stars:           67000,
		Forks:           7800,
		Watchers:        1200,
		Language:        "Python",
		Languages: []models.LanguageShare{
			{Name: "Python", Percent: 85},
			{Name: "Jupyter", Percent: 10},
			{Name: "Shell", Percent: 3},
			{Name: "Other", Percent: 2},
		},
		License:      "MIT",
		LastUpdated:  "1 day ago",
		Size:         "156 MB",
		Topics:       []string{"ai", "speech", "recognition", "openai", "machine-learning"},
		Contributors: 89,
		Releases:     12,
		Issues:       456,
		PullRequests: 67,
	},
}
