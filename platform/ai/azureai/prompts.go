package azureai

import "fmt"

func outreachPrompt(profile LeadProfile) string {
	userContext := fmt.Sprintf("<< USER INFO >>\nName: %s\nCompany: %s\nEmail: %s\nPosition: %s\n<< END OF USER INFO >>",
		profile.Name, profile.Company, profile.Email, profile.Position)

	return "You are a cold outreach assistant. Here is the context for our interaction:\n\n" +
		userContext + "\n" +
		"Create an email message with only the content. Use the instructions below:\n" +
		"- Use the user information to personalize your greeting.\n" +
		"- Never say you are an AI, assistant, or bot. Always use a real-sounding human name.\n" +
		"- Keep the content under 20 lines.\n" +
		"- Do not provide the regards or any best regards.\n" +
		"- End the message content with a prompt to click on the conversation link that follows the message.\n"
}

func meetingPrompt(profile LeadProfile) string {
	return fmt.Sprintf(
		"You are a sales scheduling assistant. Draft a short, friendly email proposing a meeting with %s (%s).\n"+
			"Base the proposal on this conversation summary:\n%s\n"+
			"Suggest two concrete time windows in the coming week and ask which works best. "+
			"Never say you are an AI. Keep it under 12 lines and do not add a signature.",
		profile.Name, profile.Company, profile.ChatSummary)
}
