package contact

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/ajgr33nboy/servin/pkg/strutil"
)

const receivedAtLayout = "Mon, 02 Jan 2006 15:04:05 MST"

// Profile 자동 응답 메일의 서명과 링크에 사용되는 운영자 정보입니다.
type Profile struct {
	OwnerName   string
	WebsiteURL  string
	GitHubURL   string
	LinkedInURL string
}

type profileLink struct {
	Label string
	URL   string
}

func (p Profile) links() []profileLink {
	var links []profileLink
	for _, l := range []profileLink{
		{Label: "Website", URL: p.WebsiteURL},
		{Label: "GitHub", URL: p.GitHubURL},
		{Label: "LinkedIn", URL: p.LinkedInURL},
	} {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

const ownerPlainTmpl = `New contact form submission

Name: {{.Name}}
Email: {{.Email}}
Received: {{.ReceivedAt}}
Source: {{.Source}}

Message:
{{.Message}}
`

const ownerHTMLTmpl = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New contact form submission</h2>
  <table id="details" cellpadding="6">
    <tr><th align="left">Name</th><td class="name">{{.Name}}</td></tr>
    <tr><th align="left">Email</th><td class="email"><a href="mailto:{{.EmailAddr}}">{{.Email}}</a></td></tr>
    <tr><th align="left">Received</th><td class="received">{{.ReceivedAt}}</td></tr>
    <tr><th align="left">Source</th><td class="source">{{.Source}}</td></tr>
  </table>
  <h3>Message</h3>
  <div id="message" style="white-space: pre-wrap; border-left: 3px solid #ccc; padding-left: 12px;">{{.MessageHTML}}</div>
</body>
</html>
`

const autoReplyPlainTmpl = `Hi {{.FirstName}},

Thanks for getting in touch! I've received your message and will get back to you as soon as possible.
{{if .Links}}
In the meantime, feel free to check out my work:
{{range .Links}}- {{.Label}}: {{.URL}}
{{end}}{{end}}
Best regards,
{{.OwnerName}}
`

const autoReplyHTMLTmpl = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <p id="greeting">Hi {{.FirstName}},</p>
  <p>Thanks for getting in touch! I've received your message and will get back to you as soon as possible.</p>
  {{- if .Links}}
  <p>In the meantime, feel free to check out my work:</p>
  <ul id="links">
    {{- range .Links}}
    <li><a href="{{.URL}}">{{.Label}}</a></li>
    {{- end}}
  </ul>
  {{- end}}
  <p id="signature">Best regards,<br>{{.OwnerName}}</p>
</body>
</html>
`

var (
	ownerPlain     = texttemplate.Must(texttemplate.New("owner.txt").Parse(ownerPlainTmpl))
	ownerHTML      = htmltemplate.Must(htmltemplate.New("owner.html").Parse(ownerHTMLTmpl))
	autoReplyPlain = texttemplate.Must(texttemplate.New("auto_reply.txt").Parse(autoReplyPlainTmpl))
	autoReplyHTML  = htmltemplate.Must(htmltemplate.New("auto_reply.html").Parse(autoReplyHTMLTmpl))
)

// 정제된 필드는 이미 이스케이프되어 있으므로 HTML 템플릿에는 htmltemplate.HTML로 넘겨 이중 이스케이프를 막습니다.
type ownerView struct {
	Name        htmltemplate.HTML
	Email       htmltemplate.HTML
	EmailAddr   string
	Message     string
	MessageHTML htmltemplate.HTML
	ReceivedAt  string
	Source      string
}

type autoReplyView struct {
	FirstName htmltemplate.HTML
	OwnerName string
	Links     []profileLink
}

func renderOwnerEmail(recipient string, s Submission) (contract.Email, error) {
	view := ownerView{
		Name:        htmltemplate.HTML(s.Name),
		Email:       htmltemplate.HTML(s.Email),
		EmailAddr:   s.Address(),
		Message:     s.Message,
		MessageHTML: htmltemplate.HTML(strings.ReplaceAll(s.Message, "\n", "<br>")),
		ReceivedAt:  s.Timestamp.Format(receivedAtLayout),
		Source:      s.Source,
	}

	plain, html, err := render(ownerPlain, ownerHTML, view)
	if err != nil {
		return contract.Email{}, err
	}

	return contract.Email{
		To:        recipient,
		Subject:   "New contact form submission from " + s.Name,
		PlainBody: plain,
		HTMLBody:  html,
		ReplyTo:   s.Address(),
	}, nil
}

func renderAutoReply(p Profile, s Submission) (contract.Email, error) {
	view := autoReplyView{
		FirstName: htmltemplate.HTML(strutil.FirstToken(s.Name)),
		OwnerName: p.OwnerName,
		Links:     p.links(),
	}

	plain, html, err := render(autoReplyPlain, autoReplyHTML, view)
	if err != nil {
		return contract.Email{}, err
	}

	return contract.Email{
		To:          s.Address(),
		Subject:     "Thanks for reaching out!",
		PlainBody:   plain,
		HTMLBody:    html,
		DisplayName: p.OwnerName,
	}, nil
}

func render(plainTmpl *texttemplate.Template, htmlTmpl *htmltemplate.Template, data any) (string, string, error) {
	var plain, html bytes.Buffer
	if err := plainTmpl.Execute(&plain, data); err != nil {
		return "", "", err
	}
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", err
	}
	return plain.String(), html.String(), nil
}
