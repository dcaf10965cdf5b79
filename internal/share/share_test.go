package share

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		feedback string
		want     string
	}{
		{
			name:     "with feedback",
			title:    "15-minute mobility routine",
			feedback: "Energized",
			want:     `I just completed "15-minute mobility routine" on Holistic Daily App! It made me feel: Energized`,
		},
		{
			name:  "without feedback",
			title: "Spend 10 minutes on a puzzle",
			want:  `I just completed "Spend 10 minutes on a puzzle" on Holistic Daily App!`,
		},
		{
			name:     "feedback keeps trailing spaces",
			title:    "Take a 20-minute nature walk",
			feedback: "Feeling: Accomplished - calm  ",
			want:     `I just completed "Take a 20-minute nature walk" on Holistic Daily App! It made me feel: Feeling: Accomplished - calm  `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.title, tt.feedback); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText_KeepsQuotesInTitle(t *testing.T) {
	got := Text(`Say "hi"`, "")
	if got != `I just completed "Say "hi"" on Holistic Daily App!` {
		t.Errorf("Text() = %q", got)
	}
}

func TestBuild(t *testing.T) {
	p := Build("https://holistic.example.com/", "Walk", "Calm & happy")

	wantEnc := "I%20just%20completed%20%22Walk%22%20on%20Holistic%20Daily%20App!%20It%20made%20me%20feel%3A%20Calm%20%26%20happy"
	if p.SMSLink != "sms:?body="+wantEnc {
		t.Errorf("SMSLink = %s", p.SMSLink)
	}
	if p.EmailLink != "mailto:?subject=My%20Holistic%20Daily%20Task&body="+wantEnc {
		t.Errorf("EmailLink = %s", p.EmailLink)
	}
	if p.URL != "https://holistic.example.com?share="+wantEnc {
		t.Errorf("URL = %s", p.URL)
	}
	if p.Text != `I just completed "Walk" on Holistic Daily App! It made me feel: Calm & happy` {
		t.Errorf("Text = %s", p.Text)
	}
}
