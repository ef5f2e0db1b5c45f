package site

// pageTemplate is the html/template for the single-page document
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <script src="https://cdnjs.cloudflare.com/ajax/libs/three.js/r128/three.min.js"></script>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body class="bg-gray-50 text-gray-800">
  <canvas id="bg-canvas"></canvas>
  <header class="sticky top-0 bg-white/80 backdrop-blur border-b border-gray-200 z-10">
    <nav class="max-w-6xl mx-auto px-6 py-4 flex items-center justify-between">
      <a href="#{{.Initial}}" class="text-lg font-bold" data-nav>{{.Owner}}</a>
      <div class="hidden md:flex gap-6">
        {{- range .Desktop}}
        <a href="{{.Href}}" class="nav-link{{if .Selected}} active{{end}}" data-nav>{{.Label}}</a>
        {{- end}}
      </div>
      <button id="mobile-menu-button" class="md:hidden" aria-label="Toggle menu" aria-controls="mobile-menu">&#9776;</button>
    </nav>
    <div id="mobile-menu" class="md:hidden px-6 pb-4{{if .MenuOpen}} show{{end}}">
      {{- range .Mobile}}
      <a href="{{.Href}}" class="mobile-nav-link block py-2{{if .Selected}} active{{end}}" data-nav>{{.Label}}</a>
      {{- end}}
    </div>
  </header>
  <main class="max-w-6xl mx-auto px-6 py-12">
    {{- range .Sections}}
    <section id="{{.ID}}" class="page{{if .Active}} active{{end}}">
      <h2 class="text-3xl font-bold mb-6">{{.Title}}</h2>
      <div class="page-body prose mb-8">{{.Body}}</div>
      {{- if .Buttons}}
      <div class="flex gap-4 mb-8">
        {{- range .Buttons}}
        <a href="{{.Href}}" class="nav-link-btn bg-blue-600 text-white font-bold py-2 px-6 rounded-lg" data-nav>{{.Label}}</a>
        {{- end}}
      </div>
      {{- end}}
      {{- if .Projects}}
      <div id="projects-grid" class="grid gap-8 sm:grid-cols-2 lg:grid-cols-3">{{.Grid}}</div>
      {{- end}}
    </section>
    {{- end}}
  </main>
  <script src="/static/app.js"></script>
</body>
</html>`
