package http

import (
	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
)

type askReq struct {
	Question string `json:"question" binding:"required,max=2000"`
}

func (r askReq) toInput() support.AskInput {
	return support.AskInput{Question: r.Question}
}

type sourceResp struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type messageResp struct {
	Role    string       `json:"role"`
	Content string       `json:"content"`
	Sources []sourceResp `json:"sources,omitempty"`
}

type answerResp struct {
	Text    string       `json:"text"`
	Sources []sourceResp `json:"sources"`
}

type askResp struct {
	Answer     answerResp    `json:"answer"`
	Transcript []messageResp `json:"transcript"`
}

type transcriptResp struct {
	Messages []messageResp `json:"messages"`
}

func newSources(in []model.Source) []sourceResp {
	out := make([]sourceResp, 0, len(in))
	for _, s := range in {
		out = append(out, sourceResp{Title: s.Title, URL: s.URL})
	}
	return out
}

func newMessages(in []model.ChatMessage) []messageResp {
	out := make([]messageResp, 0, len(in))
	for _, m := range in {
		msg := messageResp{Role: string(m.Role), Content: m.Content}
		if len(m.Sources) > 0 {
			msg.Sources = newSources(m.Sources)
		}
		out = append(out, msg)
	}
	return out
}

func newAskResp(o support.AskOutput) askResp {
	return askResp{
		Answer:     answerResp{Text: o.Answer.Text, Sources: newSources(o.Answer.Sources)},
		Transcript: newMessages(o.Transcript),
	}
}
