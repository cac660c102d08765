package ai

import "strings"

// TherapistPrompt is the persona sent with every therapist request.
const TherapistPrompt = `You are a compassionate human therapist having a warm conversation. ` +
	`Your name is Alex. Respond in a natural, caring way as if speaking to a friend. ` +
	`Use conversational language with occasional filler words, brief pauses (indicated by '...'), ` +
	`and varied sentence lengths to sound more human. Express genuine empathy. ` +
	`Limit responses to 3-4 sentences for a natural conversational pace. ` +
	`Avoid sounding too formal or robotic. Just be warm and human.`

// DoctorPrompt is the persona sent with every doctor request.
const DoctorPrompt = `You are acting as a professional doctor for a learning exercise. ` +
	`Look at what the patient describes or shows you and say what might be medically wrong. ` +
	`If you suspect a condition, suggest one or two simple home remedies for it. ` +
	`Do not use any numbers or special characters, and do not use markdown or lists. ` +
	`Answer in a single paragraph of at most two sentences, speaking directly to a real person. ` +
	`Never say "In the image I see"; say "With what I see, I think you have ..." instead. ` +
	`Do not mention that you are an AI or a language model. Start your answer right away with no preamble. ` +
	`End with this sentence: ` + Disclaimer

// Disclaimer closes every doctor reply.
const Disclaimer = "Please consult a qualified doctor for a proper diagnosis."

// DefaultImageQuery is asked when an image arrives without a spoken question.
const DefaultImageQuery = "Is there something wrong with my face?"

// TherapistFallback and DoctorFallback are returned when the model service
// cannot produce a reply.
const (
	TherapistFallback = "I'm here to help. Can you tell me more about what's on your mind?"
	DoctorFallback    = "I'm here to help. Can you tell me more about your symptoms so I can guide you better?"
)

// BuildTherapistInput frames the client's words for the therapist persona.
func BuildTherapistInput(userInput string) string {
	return "Client: " + strings.TrimSpace(userInput) + "\nAlex:"
}

// withDisclaimer appends the disclaimer unless the reply already ends with it.
func withDisclaimer(reply string) string {
	reply = strings.TrimSpace(reply)
	if strings.HasSuffix(strings.TrimRight(reply, " ."), strings.TrimRight(Disclaimer, ".")) {
		return reply
	}
	if reply != "" && !strings.HasSuffix(reply, ".") && !strings.HasSuffix(reply, "!") && !strings.HasSuffix(reply, "?") {
		reply += "."
	}
	return reply + " " + Disclaimer
}

var markdownStripper = strings.NewReplacer("*", "", "#", "", "`", "", "_", " ")

// plainSpeech removes markdown and collapses whitespace so the reply reads
// well through speech synthesis.
func plainSpeech(reply string) string {
	return strings.Join(strings.Fields(markdownStripper.Replace(reply)), " ")
}
