package site

// pageTemplate is the Go html/template for each documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-base="{{.BasePath}}" data-debounce="{{.DebounceMS}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="{{.BasePath}}index.html" class="project-title">{{.ProjectName}}</a>
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.Sidebar}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="mobile-menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <div class="search-container" id="search-container">
        <svg class="search-icon" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="11" cy="11" r="8"/><line x1="21" y1="21" x2="16.65" y2="16.65"/>
        </svg>
        <input type="text" id="search-input" placeholder="Search docs..." autocomplete="off">
        <div class="search-results" id="search-results"></div>
      </div>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <div class="page-layout">
      <article class="page-content">
        {{.Content}}
      </article>
      {{.TOC}}
    </div>
  </main>
  <button class="back-to-top" id="back-to-top" aria-label="Back to top">&uarr;</button>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the full CSS for the documentation site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --highlight: #fff3bf;
  --sidebar-width: 280px;
  --content-max-width: 900px;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --code-bg: #1f2030;
  --highlight: #3d3a1f;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

html { font-size: 16px; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  display: flex;
  min-height: 100vh;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Sidebar ============ */
.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  overflow-y: auto;
  z-index: 100;
  transition: transform 0.25s;
}

.sidebar-header { padding: 20px 16px 12px; border-bottom: 1px solid var(--border); }
.project-title { font-size: 1.1rem; font-weight: 600; color: var(--text); }

.sidebar-tree { padding: 12px 8px; font-size: 0.9rem; }
.sidebar-tree ul { list-style: none; }
.sidebar-tree li a { display: block; padding: 3px 10px; border-radius: 4px; color: var(--text-secondary); }
.sidebar-tree li a.active { background: var(--accent-light); color: var(--accent); font-weight: 500; }
.sidebar-section { margin-top: 12px; }
.sidebar-section > ul { display: none; padding-left: 8px; }
.sidebar-section.expanded > ul { display: block; }
.dir-toggle {
  display: block;
  cursor: pointer;
  padding: 3px 10px;
  font-weight: 600;
  color: var(--text-muted);
  text-transform: uppercase;
  font-size: 0.75rem;
  letter-spacing: 0.05em;
}

.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 90;
}

/* ============ Top bar ============ */
.content { margin-left: var(--sidebar-width); flex: 1; min-width: 0; }

.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 32px;
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  background: var(--bg);
  z-index: 50;
}

.menu-toggle {
  display: none;
  background: none;
  border: none;
  color: var(--text);
  cursor: pointer;
  padding: 4px;
}

.theme-toggle {
  margin-left: auto;
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  cursor: pointer;
  padding: 6px 8px;
  display: flex;
  align-items: center;
}

.theme-toggle:hover { background: var(--bg-secondary); }

[data-theme="dark"] .sun-icon { display: inline; }
[data-theme="dark"] .moon-icon { display: none; }
[data-theme="light"] .sun-icon { display: none; }
[data-theme="light"] .moon-icon { display: inline; }

/* ============ Search ============ */
.search-container { position: relative; flex: 1; max-width: 480px; }
.search-icon { position: absolute; left: 10px; top: 50%; transform: translateY(-50%); color: var(--text-muted); }

#search-input {
  width: 100%;
  padding: 7px 12px 7px 32px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg-secondary);
  color: var(--text);
  font-size: 0.9rem;
}

#search-input:focus { outline: none; border-color: var(--accent); }

.search-results {
  display: none;
  position: absolute;
  top: calc(100% + 6px);
  left: 0;
  right: 0;
  max-height: 70vh;
  overflow-y: auto;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  box-shadow: var(--shadow-lg);
}

.search-results.visible { display: block; }

.search-result-item { padding: 10px 14px; cursor: pointer; border-bottom: 1px solid var(--border); }
.search-result-item:last-child { border-bottom: none; }
.search-result-item:hover, .search-result-item.selected { background: var(--accent-light); }
.search-result-title { font-weight: 600; }
.search-result-excerpt { font-size: 0.85rem; color: var(--text-secondary); }
.search-result-url { font-size: 0.75rem; color: var(--text-muted); }
.search-highlight { background: var(--highlight); border-radius: 2px; }
.no-results { padding: 14px; color: var(--text-muted); text-align: center; }

/* ============ Content ============ */
.page-layout { display: flex; gap: 32px; padding: 32px; }
.page-content { flex: 1; min-width: 0; max-width: var(--content-max-width); }
.page-content h1, .page-content h2, .page-content h3, .page-content h4 { margin: 1.4em 0 0.6em; line-height: 1.3; scroll-margin-top: 70px; }
.page-content h1:first-child { margin-top: 0; }
.page-content p, .page-content ul, .page-content ol, .page-content table { margin-bottom: 1em; }
.page-content ul, .page-content ol { padding-left: 1.5em; }
.page-content code { background: var(--code-bg); padding: 0.1em 0.35em; border-radius: 4px; font-size: 0.88em; }
.page-content pre { position: relative; background: var(--code-bg); padding: 14px 16px; border-radius: 6px; overflow-x: auto; margin-bottom: 1em; }
.page-content pre code { background: none; padding: 0; }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 6px 12px; }

.copy-code-btn {
  position: absolute;
  top: 8px;
  right: 8px;
  background: var(--bg);
  color: var(--text);
  border: 1px solid var(--border);
  border-radius: 4px;
  padding: 4px 8px;
  font-size: 12px;
  cursor: pointer;
  opacity: 0;
  transition: opacity 0.2s;
}

.page-content pre:hover .copy-code-btn { opacity: 1; }

/* ============ TOC ============ */
.toc { width: 220px; flex-shrink: 0; position: sticky; top: 80px; align-self: flex-start; font-size: 0.85rem; }
.toc ul { list-style: none; border-left: 2px solid var(--border); }
.toc li a { display: block; padding: 2px 12px; color: var(--text-secondary); }
.toc .toc-h3 a { padding-left: 24px; }
.toc .toc-h4 a { padding-left: 36px; }

/* ============ Back to top ============ */
.back-to-top {
  position: fixed;
  right: 24px;
  bottom: 24px;
  width: 40px;
  height: 40px;
  border-radius: 50%;
  border: 1px solid var(--border);
  background: var(--bg);
  color: var(--text);
  cursor: pointer;
  opacity: 0;
  pointer-events: none;
  transition: opacity 0.2s;
}

.back-to-top.visible { opacity: 1; pointer-events: auto; }

/* ============ Mobile ============ */
@media (max-width: 900px) {
  .toc { display: none; }
}

@media (max-width: 768px) {
  .sidebar { transform: translateX(-100%); }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.open { display: block; }
  .content { margin-left: 0; }
  .menu-toggle { display: block; }
  .top-bar, .page-layout { padding-left: 16px; padding-right: 16px; }
}
`

// jsContent drives the page. Search and theme state live behind the
// docsite serve API; this script only forwards DOM events.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var body = document.body;
  var base = body.getAttribute("data-base") || "/";
  var debounceMs = parseInt(body.getAttribute("data-debounce") || "300", 10);

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function applyTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("theme", theme); } catch(e) {}
  }

  try {
    var stored = localStorage.getItem("theme");
    if (stored === "light" || stored === "dark") { html.setAttribute("data-theme", stored); }
  } catch(e) {}

  fetch("/api/theme", { credentials: "same-origin" })
    .then(function(r) { return r.ok ? r.json() : null; })
    .then(function(data) { if (data) applyTheme(data.theme); })
    .catch(function() {});

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      fetch("/api/theme/toggle", { method: "POST", credentials: "same-origin" })
        .then(function(r) { if (!r.ok) throw new Error(r.status); return r.json(); })
        .then(function(data) { applyTheme(data.theme); })
        .catch(function() {
          applyTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
        });
    });
  }

  // ===== Sidebar toggle (mobile) =====
  var menuToggle = document.getElementById("mobile-menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  if (menuToggle && sidebar && overlay) {
    menuToggle.addEventListener("click", function() {
      sidebar.classList.toggle("open");
      overlay.classList.toggle("open");
      body.classList.toggle("sidebar-open");
    });
    overlay.addEventListener("click", function() {
      sidebar.classList.remove("open");
      overlay.classList.remove("open");
      body.classList.remove("sidebar-open");
    });
  }

  document.querySelectorAll(".dir-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      this.parentElement.classList.toggle("expanded");
    });
  });

  // ===== Search =====
  var input = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  var container = document.getElementById("search-container");
  var timer = null;
  var selected = -1;

  function hide() {
    results.classList.remove("visible");
    selected = -1;
  }

  function items() { return results.querySelectorAll(".search-result-item"); }

  function run(query) {
    fetch("/api/search/html?q=" + encodeURIComponent(query))
      .then(function(r) {
        if (r.status === 204) { hide(); return null; }
        return r.ok ? r.text() : null;
      })
      .then(function(markup) {
        if (markup === null || input.value !== query) return;
        results.innerHTML = markup;
        results.classList.add("visible");
        selected = -1;
      })
      .catch(function(err) { console.error("search failed:", err); });
  }

  function select(index) {
    var list = items();
    list.forEach(function(el) { el.classList.remove("selected"); });
    selected = index;
    if (index >= 0 && index < list.length) {
      list[index].classList.add("selected");
      list[index].scrollIntoView({ block: "nearest" });
    }
  }

  if (input && results) {
    input.addEventListener("input", function() {
      clearTimeout(timer);
      timer = null;
      var query = input.value;
      if (query.trim().length < 2) { hide(); return; }
      timer = setTimeout(function() { timer = null; run(query); }, debounceMs);
    });

    input.addEventListener("focus", function() {
      if (input.value.trim().length >= 2) run(input.value);
    });

    input.addEventListener("keydown", function(e) {
      var visible = results.classList.contains("visible");
      var n = items().length;
      switch (e.key) {
      case "Escape":
        hide();
        break;
      case "ArrowDown":
        if (visible && n > 0) { e.preventDefault(); select(Math.min(selected + 1, n - 1)); }
        break;
      case "ArrowUp":
        if (visible && n > 0) { e.preventDefault(); select(Math.max(selected - 1, -1)); }
        break;
      case "Enter":
        if (visible && selected >= 0 && selected < n) {
          e.preventDefault();
          window.location.href = items()[selected].getAttribute("data-url");
        }
        break;
      }
    });

    results.addEventListener("click", function(e) {
      var item = e.target.closest(".search-result-item");
      if (item) window.location.href = item.getAttribute("data-url");
    });

    document.addEventListener("click", function(e) {
      if (!container.contains(e.target)) hide();
    });
  }

  // ===== Back to top =====
  var backToTop = document.getElementById("back-to-top");
  if (backToTop) {
    window.addEventListener("scroll", function() {
      backToTop.classList.toggle("visible", window.pageYOffset > 300);
    });
    backToTop.addEventListener("click", function() {
      window.scrollTo({ top: 0, behavior: "smooth" });
    });
  }

  // ===== Smooth anchor scrolling =====
  document.querySelectorAll('a[href^="#"]').forEach(function(link) {
    link.addEventListener("click", function(e) {
      var target = document.getElementById(this.getAttribute("href").substring(1));
      if (target) {
        e.preventDefault();
        target.scrollIntoView({ behavior: "smooth", block: "start" });
        history.replaceState(null, "", "#" + target.id);
      }
    });
  });

  // ===== Copy buttons on code blocks =====
  document.querySelectorAll("pre code").forEach(function(block) {
    var button = document.createElement("button");
    button.className = "copy-code-btn";
    button.textContent = "Copy";
    block.parentElement.appendChild(button);
    button.addEventListener("click", function() {
      navigator.clipboard.writeText(block.textContent).then(function() {
        button.textContent = "Copied!";
        setTimeout(function() { button.textContent = "Copy"; }, 2000);
      }).catch(function(err) {
        console.error("Failed to copy text:", err);
      });
    });
  });
})();
`
