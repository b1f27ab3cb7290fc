package site

// pageTemplates holds the html/template definitions shared by the static
// build and the HTTP server. Each page template wraps its body in "header"
// and "footer".
const pageTemplates = `
{{define "header"}}<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-page="{{.Page}}" data-ui="{{.UI}}"{{if .ArticleSlugs}} data-article-slugs="{{.ArticleSlugs}}" data-article-base="{{.BasePath}}article/"{{end}}>
  {{if eq .Page "article"}}<div id="reading-progress" class="reading-progress"></div>{{end}}
  <nav class="navbar">
    <div class="nav-container">
      <a href="{{.Links.Home}}" class="nav-logo">{{.SiteName}}</a>
      <ul class="nav-links">
        <li><a href="{{.Links.Home}}" class="nav-link{{if eq .Page "index"}} active{{end}}">Inicio</a></li>
        <li><a href="{{.Links.Articles}}" class="nav-link">Artículos</a></li>
        <li><a href="{{.Links.Contact}}" class="nav-link{{if eq .Page "contact"}} active{{end}}">Contacto</a></li>
      </ul>
      <button class="nav-toggle" aria-label="Abrir menú"><span></span><span></span><span></span></button>
    </div>
  </nav>
{{end}}

{{define "footer"}}
  <footer class="footer">
    <p>&copy; {{.SiteName}}</p>
  </footer>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
{{end}}

{{define "fallback"}}
  <div class="error-content">
    <h1>{{.Heading}}</h1>
    <p>{{.Message}}</p>
    {{if .Action.Reload}}
    <button type="button" class="btn btn-primary" data-action="reload"><i class="{{.Action.Icon}}"></i> {{.Action.Label}}</button>
    {{else}}
    <a href="{{.Action.Href}}" class="btn btn-primary"><i class="{{.Action.Icon}}"></i> {{.Action.Label}}</a>
    {{end}}
  </div>
{{end}}

{{define "card"}}
  <a href="{{.Link}}" class="article-card">
    <div class="article-icon-wrapper">
      <i class="{{.Style.Icon}} article-icon"></i>
      <span class="article-tag {{.Style.Class}}">{{.Tag}}</span>
    </div>
    <h3 class="article-title">{{.Title}}</h3>
    <div class="article-date"><i class="far fa-calendar"></i> {{.Date}}</div>
    <p class="article-excerpt">{{.Excerpt}}</p>
    <span class="read-more-btn">Leer artículo <i class="fas fa-arrow-right"></i></span>
  </a>
{{end}}

{{define "index"}}{{template "header" .Layout}}
  <header class="hero" id="home">
    <div class="hero-content">
      <h1 class="hero-title"><span id="typed-text" data-frames="{{.Frames}}"></span><span class="typed-cursor">|</span></h1>
      <p class="hero-subtitle">{{.Layout.SiteName}}</p>
      <a href="{{.Layout.Links.Articles}}" class="btn btn-primary">Ver artículos</a>
    </div>
  </header>
  <section class="articles" id="articles">
    <div class="section-header">
      <h2>{{if .Random}}Artículo aleatorio{{else}}Artículos{{end}}</h2>
      {{if .RandomLink}}<a href="{{.RandomLink}}" class="btn btn-secondary"><i class="fas fa-random"></i> Sorpréndeme</a>
      {{else if and .ClientRandom .Cards}}<button type="button" class="btn btn-secondary" data-action="random"><i class="fas fa-random"></i> Sorpréndeme</button>{{end}}
    </div>
    <div id="articles-container" class="articles-grid">
      {{if .Fallback}}{{template "fallback" .Fallback}}
      {{else}}{{range .Cards}}{{template "card" .}}{{else}}<p class="empty-message">Todavía no hay artículos publicados.</p>{{end}}{{end}}
    </div>
  </section>
{{template "footer" .Layout}}{{end}}

{{define "article"}}{{template "header" .Layout}}
  <main class="article-container">
    {{with .Detail}}
    <header class="article-header">
      <a href="{{$.BackLink}}" class="back-btn"><i class="fas fa-arrow-left"></i> Volver a artículos</a>
      <span class="article-tag {{.Style.Class}}"><i class="{{.Style.Icon}}"></i> {{.Tag}}</span>
      <h1 class="article-title">{{.Title}}</h1>
      <div class="article-meta">
        <span id="article-date"><i class="far fa-calendar"></i> {{.Date}}</span>
        <span id="reading-time"><i class="far fa-clock"></i> {{.ReadingLabel}} lectura</span>
      </div>
    </header>
    <div id="article-content">
      <div class="article-body">
        {{if .Body}}{{.Body}}{{else}}{{range .Paragraphs}}<p>{{.}}</p>
        {{end}}{{end}}
      </div>
    </div>
    <div class="article-actions">
      <button type="button" class="action-btn" data-action="share" data-share-url="{{$.ShareURL}}" data-share-text="{{$.ShareText}}"><i class="fas fa-share-alt"></i> Compartir</button>
    </div>
    {{else}}{{with $.Fallback}}{{template "fallback" .}}{{end}}{{end}}
  </main>
{{template "footer" .Layout}}{{end}}

{{define "contact"}}{{template "header" .Layout}}
  <main class="contact-container">
    <div class="contact-info-card">
      <h1>Contacto</h1>
      <p>¿Tienes un proyecto en mente? Escríbeme y te responderé lo antes posible.</p>
    </div>
    <div class="contact-form-wrapper">
      {{if .Sent}}<div class="form-status success"><i class="fas fa-check"></i> ¡Mensaje enviado! Te contactaré pronto.</div>{{end}}
      {{with .Errors}}<div class="form-status error">Revisa los campos marcados.</div>{{end}}
      <form id="contactForm" class="form"{{if .Action}} method="post" action="{{.Action}}"{{end}} data-steps="{{.Steps}}">
        <div class="form-group">
          <label for="name">Nombre</label>
          <input id="name" name="name" type="text" value="{{.Form.Name}}" required>
          {{with index .Errors "name"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <div class="form-group">
          <label for="email">Email</label>
          <input id="email" name="email" type="email" value="{{.Form.Email}}" required>
          {{with index .Errors "email"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <div class="form-group">
          <label for="subject">Asunto</label>
          <input id="subject" name="subject" type="text" value="{{.Form.Subject}}">
          {{with index .Errors "subject"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <div class="form-group">
          <label for="message">Mensaje</label>
          <textarea id="message" name="message" rows="6" required>{{.Form.Message}}</textarea>
          {{with index .Errors "message"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <button type="submit" class="submit-btn"><i class="fas fa-paper-plane"></i> Enviar mensaje</button>
      </form>
    </div>
  </main>
{{template "footer" .Layout}}{{end}}
`

// cssContent is the stylesheet for every page.
const cssContent = `:root {
  --primary-gradient: linear-gradient(135deg, #3b82f6 0%, #8b5cf6 100%);
  --success-gradient: linear-gradient(135deg, #10b981 0%, #059669 100%);
  --bg-primary: #0f172a;
  --bg-card: #1e293b;
  --border-primary: #334155;
  --text-primary: #f1f5f9;
  --text-secondary: #cbd5e1;
  --text-muted: #94a3b8;
  --radius: 0.75rem;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg-primary);
  color: var(--text-primary);
  line-height: 1.7;
}

a { color: inherit; text-decoration: none; }

/* Navigation */
.navbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 1000;
  padding: 1rem 0; transition: background 0.3s ease, box-shadow 0.3s ease;
}
.navbar.navbar-scrolled {
  background: rgba(15, 23, 42, 0.95);
  box-shadow: 0 2px 20px rgba(0, 0, 0, 0.3);
}
.nav-container {
  max-width: 1100px; margin: 0 auto; padding: 0 1.5rem;
  display: flex; align-items: center; justify-content: space-between;
}
.nav-logo { font-weight: 700; font-size: 1.1rem; }
.nav-links { display: flex; gap: 1.5rem; list-style: none; }
.nav-link { color: var(--text-secondary); transition: color 0.2s; }
.nav-link:hover, .nav-link.active { color: var(--text-primary); }
.nav-toggle { display: none; background: none; border: none; cursor: pointer; }
.nav-toggle span { display: block; width: 24px; height: 2px; margin: 5px 0; background: var(--text-primary); transition: transform 0.3s; }

@media (max-width: 768px) {
  .nav-toggle { display: block; }
  .nav-links {
    position: absolute; top: 100%; left: 0; right: 0;
    flex-direction: column; padding: 1rem 1.5rem;
    background: var(--bg-card); display: none;
  }
  .nav-links.active { display: flex; }
  .nav-toggle.active span:nth-child(1) { transform: translateY(7px) rotate(45deg); }
  .nav-toggle.active span:nth-child(2) { opacity: 0; }
  .nav-toggle.active span:nth-child(3) { transform: translateY(-7px) rotate(-45deg); }
}

/* Buttons */
.btn {
  display: inline-flex; align-items: center; gap: 0.5rem;
  padding: 0.75rem 1.5rem; border: none; border-radius: 50px;
  font-weight: 500; cursor: pointer; color: white;
}
.btn-primary { background: var(--primary-gradient); }
.btn-secondary { background: var(--bg-card); border: 1px solid var(--border-primary); }

/* Hero */
.hero { min-height: 70vh; display: flex; align-items: center; justify-content: center; text-align: center; padding: 6rem 1.5rem 3rem; }
.hero-title { font-size: 2.5rem; min-height: 3.5rem; margin-bottom: 1rem; }
.hero-subtitle { color: var(--text-secondary); margin-bottom: 2rem; }
.typed-cursor { animation: blink 1s step-end infinite; }
@keyframes blink { 50% { opacity: 0; } }

/* Articles */
.articles { max-width: 1100px; margin: 0 auto; padding: 3rem 1.5rem; }
.section-header { display: flex; align-items: center; justify-content: space-between; margin-bottom: 2rem; }
.articles-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1.5rem; }
.article-card {
  display: flex; flex-direction: column; gap: 0.75rem; padding: 1.5rem;
  background: var(--bg-card); border: 1px solid var(--border-primary);
  border-radius: var(--radius); transition: transform 0.2s, box-shadow 0.2s;
}
.article-card:hover { transform: translateY(-4px); box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3); }
.article-icon-wrapper { display: flex; align-items: center; justify-content: space-between; }
.article-icon { font-size: 1.5rem; }
.article-tag { display: inline-block; padding: 0.2rem 0.75rem; border-radius: 50px; font-size: 0.8rem; font-weight: 600; }
.tag-swiftui { background: rgba(249, 115, 22, 0.15); color: #fb923c; }
.tag-firebase { background: rgba(234, 179, 8, 0.15); color: #facc15; }
.tag-desarrollo { background: rgba(59, 130, 246, 0.15); color: #60a5fa; }
.tag-diseno { background: rgba(236, 72, 153, 0.15); color: #f472b6; }
.tag-ios { background: rgba(148, 163, 184, 0.15); color: #e2e8f0; }
.tag-web { background: rgba(16, 185, 129, 0.15); color: #34d399; }
.article-date, .article-meta { color: var(--text-muted); font-size: 0.9rem; }
.article-excerpt { color: var(--text-secondary); flex: 1; }
.read-more-btn { color: #60a5fa; font-weight: 500; }
.empty-message { color: var(--text-muted); }
.article-card[hidden] { display: none; }

/* Article page */
.reading-progress { position: fixed; top: 0; left: 0; height: 3px; width: 0; background: var(--primary-gradient); z-index: 1100; }
.article-container { max-width: 760px; margin: 0 auto; padding: 7rem 1.5rem 3rem; }
.article-header { display: flex; flex-direction: column; gap: 1rem; margin-bottom: 2rem; }
.article-header .article-title { font-size: 2.2rem; line-height: 1.3; }
.article-meta { display: flex; gap: 1.5rem; }
.back-btn { color: var(--text-secondary); transition: transform 0.2s; }
.article-body p { margin-bottom: 1.25rem; color: var(--text-secondary); }
.article-body pre { position: relative; padding: 1rem; border-radius: var(--radius); overflow-x: auto; margin-bottom: 1.25rem; }
.copy-code-btn {
  position: absolute; top: 0.5rem; right: 0.5rem; padding: 0.25rem 0.6rem;
  border: none; border-radius: 0.4rem; background: rgba(0, 0, 0, 0.7);
  color: white; font-size: 0.8rem; cursor: pointer;
}
.copy-code-btn.copied { background: rgba(34, 197, 94, 0.8); }
.article-actions { margin-top: 2rem; }
.action-btn {
  display: inline-flex; align-items: center; gap: 0.5rem; padding: 0.6rem 1.2rem;
  background: var(--bg-card); border: 1px solid var(--border-primary); border-radius: 50px;
  color: var(--text-primary); cursor: pointer; transition: transform 0.2s;
}
.action-btn:hover, .back-btn:hover { transform: translateY(-2px); }
.error-content { text-align: center; padding: 4rem 2rem; }
.error-content h1 { margin-bottom: 1rem; }
.error-content p { color: var(--text-secondary); margin-bottom: 2rem; }

/* Contact */
.contact-container { max-width: 760px; margin: 0 auto; padding: 7rem 1.5rem 3rem; display: grid; gap: 2rem; }
.contact-info-card, .contact-form-wrapper { background: var(--bg-card); border: 1px solid var(--border-primary); border-radius: var(--radius); padding: 2rem; }
.form-group { display: flex; flex-direction: column; gap: 0.4rem; margin-bottom: 1.25rem; transition: transform 0.2s; }
.form-group input, .form-group textarea {
  padding: 0.75rem; border-radius: 0.5rem; border: 1px solid var(--border-primary);
  background: var(--bg-primary); color: var(--text-primary); font: inherit;
}
.field-error { color: #f87171; font-size: 0.85rem; }
.form-status { padding: 0.75rem 1rem; border-radius: 0.5rem; margin-bottom: 1.25rem; }
.form-status.success { border-left: 4px solid #10b981; background: rgba(16, 185, 129, 0.1); }
.form-status.error { border-left: 4px solid #ef4444; background: rgba(239, 68, 68, 0.1); }
.submit-btn { width: 100%; padding: 0.9rem; border: none; border-radius: 50px; background: var(--primary-gradient); color: white; font-weight: 600; cursor: pointer; }

/* Notifications */
.notification {
  position: fixed; top: 20px; right: 20px; max-width: 300px; padding: 1rem;
  background: var(--bg-card); border: 1px solid var(--border-primary); border-radius: 0.5rem;
  box-shadow: 0 4px 20px rgba(0, 0, 0, 0.15); z-index: 10000;
  transform: translateX(400px); transition: transform 0.3s ease;
}
.notification.show { transform: translateX(0); }
.notification.success { border-left: 4px solid #10b981; }
.notification.error { border-left: 4px solid #ef4444; }
.notification-content { display: flex; justify-content: space-between; align-items: center; }
.notification-close { background: none; border: none; color: var(--text-muted); cursor: pointer; font-size: 1.2rem; margin-left: 1rem; }

.footer { text-align: center; padding: 2rem; color: var(--text-muted); border-top: 1px solid var(--border-primary); }
`

// jsContent wires the browser-side behaviours: navigation, scroll effects,
// typed hero text, sharing and the contact button. Thresholds and messages
// come from the page's data-ui attribute.
const jsContent = `(function() {
  'use strict';

  var settings = JSON.parse(document.body.getAttribute('data-ui') || '{}');

  // Static builds: article.html?id=X redirects to the generated page.
  var slugs = document.body.getAttribute('data-article-slugs');
  if (slugs) {
    var id = new URLSearchParams(window.location.search).get('id');
    var known = JSON.parse(slugs);
    if (id !== null && Object.prototype.hasOwnProperty.call(known, id)) {
      window.location.replace(document.body.getAttribute('data-article-base') + known[id] + '.html');
      return;
    }
  }

  function notify(message, type) {
    var existing = document.querySelector('.notification');
    if (existing) existing.remove();
    var el = document.createElement('div');
    el.className = 'notification ' + (type || 'info');
    var content = document.createElement('div');
    content.className = 'notification-content';
    var msg = document.createElement('span');
    msg.className = 'notification-message';
    msg.textContent = message;
    var close = document.createElement('button');
    close.className = 'notification-close';
    close.textContent = '×';
    close.addEventListener('click', function() { el.remove(); });
    content.appendChild(msg);
    content.appendChild(close);
    el.appendChild(content);
    document.body.appendChild(el);
    setTimeout(function() { el.classList.add('show'); }, 10);
    setTimeout(function() {
      el.classList.remove('show');
      setTimeout(function() { el.remove(); }, 300);
    }, settings.notification_ms);
  }

  // Mobile navigation.
  var navToggle = document.querySelector('.nav-toggle');
  var navLinks = document.querySelector('.nav-links');
  if (navToggle && navLinks) {
    var closeMenu = function() {
      navLinks.classList.remove('active');
      navToggle.classList.remove('active');
    };
    navToggle.addEventListener('click', function(e) {
      e.preventDefault();
      navLinks.classList.toggle('active');
      navToggle.classList.toggle('active');
    });
    navLinks.addEventListener('click', function(e) {
      if (e.target.classList.contains('nav-link')) closeMenu();
    });
    document.addEventListener('click', function(e) {
      if (!navToggle.contains(e.target) && !navLinks.contains(e.target)) closeMenu();
    });
    window.addEventListener('resize', function() {
      if (window.innerWidth > settings.nav_breakpoint) closeMenu();
    });
  }

  // Navbar background and reading progress.
  var navbar = document.querySelector('.navbar');
  var progressBar = document.getElementById('reading-progress');
  var ticking = false;
  function onScroll() {
    var top = window.pageYOffset || document.documentElement.scrollTop;
    if (navbar) navbar.classList.toggle('navbar-scrolled', top > settings.navbar_scroll_threshold);
    if (progressBar) {
      var height = document.documentElement.scrollHeight - window.innerHeight;
      var pct = height <= 0 ? 0 : (top / height) * 100;
      progressBar.style.width = Math.min(100, Math.max(0, pct)) + '%';
    }
    ticking = false;
  }
  window.addEventListener('scroll', function() {
    if (!ticking) {
      window.requestAnimationFrame(onScroll);
      ticking = true;
    }
  });
  onScroll();

  // Smooth scrolling for in-page anchors.
  document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
    anchor.addEventListener('click', function(e) {
      var target = document.querySelector(this.getAttribute('href'));
      if (!target) return;
      e.preventDefault();
      var offset = target.getBoundingClientRect().top + window.pageYOffset - settings.anchor_offset;
      window.scrollTo({ top: Math.max(0, offset), behavior: 'smooth' });
    });
  });

  // Typed hero text: one precomputed cycle of frames, played in a loop.
  var typed = document.getElementById('typed-text');
  if (typed) {
    var frames = JSON.parse(typed.getAttribute('data-frames') || '[]');
    var frame = 0;
    var tick = function() {
      if (frames.length === 0) return;
      var f = frames[frame];
      typed.textContent = f.text;
      frame = (frame + 1) % frames.length;
      setTimeout(tick, f.delay_ms);
    };
    tick();
  }

  // Random article in static builds: show one of the rendered cards.
  var randomBtn = document.querySelector('[data-action="random"]');
  if (randomBtn) {
    randomBtn.addEventListener('click', function() {
      var cards = document.querySelectorAll('#articles-container .article-card');
      if (cards.length === 0) return;
      var pick = Math.floor(Math.random() * cards.length);
      cards.forEach(function(card, i) { card.hidden = i !== pick; });
      var heading = document.querySelector('#articles .section-header h2');
      if (heading) heading.textContent = 'Artículo aleatorio';
    });
  }

  // Fallback reload buttons.
  document.querySelectorAll('[data-action="reload"]').forEach(function(btn) {
    btn.addEventListener('click', function() { window.location.reload(); });
  });

  // Clipboard with toasts, shared by links and code blocks.
  function copyText(text, okMessage) {
    if (!navigator.clipboard) {
      notify(settings.copy_failed_message, 'error');
      return Promise.reject(new Error('clipboard unavailable'));
    }
    return navigator.clipboard.writeText(text).then(function() {
      notify(okMessage, 'success');
    }, function(err) {
      notify(settings.copy_failed_message, 'error');
      throw err;
    });
  }
  function copyLink(url) {
    copyText(url, settings.copied_message).catch(function() {});
  }

  // Copy buttons on code blocks.
  document.querySelectorAll('.article-body pre > code').forEach(function(code) {
    var pre = code.parentElement;
    if (pre.querySelector('.copy-code-btn')) return;
    var btn = document.createElement('button');
    btn.type = 'button';
    btn.className = 'copy-code-btn';
    var label = function(icon, text) {
      btn.textContent = ' ' + text;
      var i = document.createElement('i');
      i.className = icon;
      btn.insertBefore(i, btn.firstChild);
    };
    label('fas fa-copy', 'Copiar');
    btn.addEventListener('click', function() {
      copyText(code.textContent, settings.code_copied_message).then(function() {
        btn.classList.add('copied');
        label('fas fa-check', 'Copiado');
      }, function() {
        label('fas fa-times', 'Error');
      }).then(function() {
        setTimeout(function() {
          btn.classList.remove('copied');
          label('fas fa-copy', 'Copiar');
        }, 2000);
      });
    });
    pre.appendChild(btn);
  });

  // Share buttons.
  document.querySelectorAll('[data-action="share"]').forEach(function(btn) {
    btn.addEventListener('click', function() {
      var url = btn.getAttribute('data-share-url') || window.location.href;
      if (navigator.share) {
        navigator.share({ title: document.title, url: url, text: btn.getAttribute('data-share-text') })
          .catch(function(err) { console.log('Error sharing:', err); });
      } else {
        copyLink(url);
      }
    });
  });

  // Contact button steps. Forms without an action are not submitted.
  var form = document.getElementById('contactForm');
  if (form) {
    var steps = JSON.parse(form.getAttribute('data-steps') || '[]');
    form.addEventListener('submit', function(e) {
      if (form.getAttribute('action')) return;
      e.preventDefault();
      var btn = form.querySelector('.submit-btn');
      var run = function(i) {
        if (i >= steps.length) return;
        var icon = document.createElement('i');
        icon.className = steps[i].icon;
        btn.textContent = ' ' + steps[i].label;
        btn.insertBefore(icon, btn.firstChild);
        if (steps[i].hold_ms > 0) setTimeout(function() { run(i + 1); }, steps[i].hold_ms);
      };
      run(0);
    });
  }
})();
`
