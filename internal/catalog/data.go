package catalog

// Default returns the built-in practice catalog.
func Default() *Catalog {
	return New(
		Product{
			Name:        "Swiggy",
			Icon:        "🍔",
			Description: "Food Delivery & More",
			Flows: []Flow{
				{
					Name: "Searching for a Restaurant",
					Questions: map[Role][]Question{
						RoleEntryLevel: {
							{
								Text:        "Open Swiggy. What's the very first thing you see on the home screen? What do you think is the primary goal for the user here?",
								Placeholder: "Focus on the user's immediate needs. What problem are they trying to solve right away?",
							},
							{
								Text:        "Tap the main search bar. What happens? Describe the elements that appear and why they are useful for the user.",
								Placeholder: "Think about reducing user effort. How does this design help someone find what they want faster?",
							},
							{
								Text:        "Type 'pizza' and look at the results. What key information is shown for each restaurant? Is it easy to compare them?",
								Placeholder: "Analyze the information hierarchy. What are the most important details for making a quick decision?",
							},
							{
								Text:        "Find the filter options. What's one filter you would add to help a user on a tight budget? Justify your choice.",
								Placeholder: "Consider a specific user persona. How can you make the experience better for them?",
							},
						},
						RoleMidLevel: {
							{
								Text:        "On the home screen, how does Swiggy encourage users to explore beyond their usual orders? What are the trade-offs of this approach?",
								Placeholder: "Consider the balance between discovery and efficiency. Does it ever get in the user's way?",
							},
							{
								Text:        "When you search, the app shows 'Recent Searches' and 'Trending'. Why show both? What user problem does each one solve?",
								Placeholder: "Think about different user intents. A user who knows what they want vs. one looking for inspiration.",
							},
							{
								Text:        "Analyze the information density on the search results page. What's one piece of information you would REMOVE to make it less cluttered, and what's the potential downside?",
								Placeholder: "This is about trade-offs. Improving one aspect (clarity) might hurt another (information richness).",
							},
							{
								Text:        "How would you measure the success of the 'Filter' feature? Propose one primary success metric and a counter-metric.",
								Placeholder: "Think about user behavior. How do you know if a feature is actually helping users and not causing problems?",
							},
						},
						RoleSenior: {
							{
								Text:        "Analyze Swiggy's home screen. What is the overarching business objective reflected in its layout? How does it balance user acquisition, retention, and monetization?",
								Placeholder: "Think about the business strategy. How does the UI serve long-term goals beyond just placing one order?",
							},
							{
								Text:        "Evaluate the search interaction. What trade-offs were likely made between showing personalized suggestions vs. popular/trending items? What data signals would you use to power this?",
								Placeholder: "Consider the technical and product trade-offs. What are the pros and cons of different personalization strategies?",
							},
							{
								Text:        "Assess the search results page from a platform perspective. How does the ranking algorithm seem to work? What are the potential impacts on restaurant partners (e.g., discoverability for new vs. established players)?",
								Placeholder: "Think about the entire ecosystem. How do design choices affect all parties, not just the end-user?",
							},
							{
								Text:        "Critique the filter and sort functionality. How would you evolve this feature to support 'group ordering' use cases more effectively? What new complexities would that introduce?",
								Placeholder: "Think about future product evolution and new user segments. How can the current feature set be a foundation for future growth?",
							},
						},
					},
				},
			},
		},
		Product{
			Name:        "Spotify",
			Icon:        "🎵",
			Description: "Music & Podcasts",
			Flows: []Flow{
				{
					Name: "Discovering New Music",
					Questions: map[Role][]Question{
						RoleEntryLevel: {
							{
								Text:        "On the Spotify home screen, what are the top 3 things you see that help you find new music?",
								Placeholder: "Identify the most prominent UI elements designed for discovery.",
							},
							{
								Text:        "Go to a playlist like 'Discover Weekly'. Why do you think Spotify includes some songs you already know or like in this playlist?",
								Placeholder: "Think about user psychology. How does familiarity build trust in recommendations?",
							},
							{
								Text:        "Use the 'Song Radio' feature. How is this different from a regular playlist? When would a user choose one over the other?",
								Placeholder: "Focus on the user's context and intent. What specific need does each feature fulfill?",
							},
						},
						RoleMidLevel: {
							{
								Text:        "How does the home screen balance personalized content ('Made for You') with universal content ('Charts')? What is the benefit of showing both?",
								Placeholder: "Think about user trust and serendipity. How do you cater to personal taste while also showing what's popular?",
							},
							{
								Text:        "A user complains 'Discover Weekly' is repetitive. What are two potential reasons for this, and what's one experiment you would run to fix it?",
								Placeholder: "Formulate a hypothesis. How would you test if your proposed solution actually works?",
							},
							{
								Text:        "How would you measure the success of 'Song Radio'? What user actions would tell you that it's a valuable feature for music discovery?",
								Placeholder: "Define success metrics. What data points would prove the feature is achieving its goal?",
							},
						},
						RoleSenior: {
							{
								Text:        "Analyze the home screen's content strategy. How does Spotify balance algorithmic recommendations ('Made for You') vs. editorial content (human-curated playlists)? What are the strategic benefits of each?",
								Placeholder: "Consider the long-term engagement and platform differentiation. Why not go 100% algorithmic?",
							},
							{
								Text:        "Evaluate the 'Discover Weekly' feature. What are the key data inputs that make this feature successful? What are the biggest risks or failure modes for this recommendation engine (e.g., filter bubbles)?",
								Placeholder: "Think about the data science and potential negative consequences. How would you measure and mitigate them?",
							},
							{
								Text:        "Critique the 'Song Radio' feature's role in the ecosystem. How does this feature impact artist discovery and royalty payouts? What second-order effects might it have on user listening habits?",
								Placeholder: "Think about the platform's health and its impact on creators. Is it promoting diversity or a 'rich-get-richer' effect?",
							},
						},
					},
				},
			},
		},
	)
}
