package web

import "html/template"

// resultPage feeds the post-generation template.
type resultPage struct {
	StudentName  string
	Warnings     []string
	BandsURL     string
	NarrativeURL string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Assessment Report Generator</title>
<style>
body { font-family: sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; font-weight: bold; }
textarea, input[type=text] { width: 100%; box-sizing: border-box; }
textarea { height: 5rem; }
button { margin-top: 1.5rem; padding: 0.5rem 1.5rem; }
</style>
</head>
<body>
<h1>Assessment Report Generator</h1>
<p>Upload a scoring PDF and fill in the details below to generate student reports.</p>
<form action="/generate" method="post" enctype="multipart/form-data">
<label for="report">Score Report PDF</label>
<input type="file" id="report" name="report" accept="application/pdf" required>

<label for="testing_observation">Testing Observations</label>
<textarea id="testing_observation" name="testing_observation"></textarea>

<label for="primary_language">Student's Primary Language</label>
<input type="text" id="primary_language" name="primary_language">

<label for="vision_comment">Vision/Hearing Screening Comments</label>
<textarea id="vision_comment" name="vision_comment"></textarea>

<label for="teacher_input">Teacher Input</label>
<textarea id="teacher_input" name="teacher_input"></textarea>

<button type="submit">Generate Reports</button>
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Reports Generated</title>
<style>
body { font-family: sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; }
.warning { color: #8a6d3b; background: #fcf8e3; padding: 0.5rem; margin: 0.25rem 0; }
li { margin: 0.5rem 0; }
</style>
</head>
<body>
<h1>Reports Generated</h1>
{{if .StudentName}}<p>Reports for <strong>{{.StudentName}}</strong> are ready.</p>{{end}}
{{range .Warnings}}<div class="warning">{{.}}</div>{{end}}
<ul>
{{if .BandsURL}}<li><a href="{{.BandsURL}}">Download score band report (PDF)</a></li>{{end}}
{{if .NarrativeURL}}<li><a href="{{.NarrativeURL}}">Download narrative document (DOCX)</a></li>{{end}}
</ul>
<p><a href="/">Process another report</a></p>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Error</title>
<style>
body { font-family: sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; }
.error { color: #a94442; background: #f2dede; padding: 0.75rem; }
</style>
</head>
<body>
<h1>Something went wrong</h1>
<div class="error">{{.}}</div>
<p><a href="/">Back to the upload form</a></p>
</body>
</html>
`))
