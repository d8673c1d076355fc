package handlers

import "html/template"

type homePageNote struct {
	HTML      template.HTML
	CreatedAt string
}

type homePageData struct {
	Email string
	Notes []homePageNote
}

var homePageTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Notes</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            max-width: 680px;
            margin: 2rem auto;
            padding: 0 1rem;
            color: #1f2937;
        }
        header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            margin-bottom: 1.5rem;
        }
        header span {
            font-size: 0.875rem;
            color: #6b7280;
        }
        textarea {
            width: 100%;
            min-height: 80px;
            padding: 0.5rem;
            border: 1px solid #ccc;
            border-radius: 4px;
            box-sizing: border-box;
            font: inherit;
        }
        button {
            margin-top: 0.5rem;
            padding: 0.4rem 1rem;
            background: #2563eb;
            color: white;
            border: none;
            border-radius: 4px;
            cursor: pointer;
        }
        .note {
            border-bottom: 1px solid #e5e7eb;
            padding: 1rem 0;
        }
        .note time {
            font-size: 0.75rem;
            color: #9ca3af;
        }
    </style>
</head>
<body>
    <header>
        <h1>Notes</h1>
        <span>{{.Email}} &middot; <a href="/api/auth/logout">Sign out</a></span>
    </header>
    <form id="note-form">
        <textarea id="content" placeholder="Write a note in markdown..." required></textarea>
        <button type="submit">Save</button>
    </form>
    <main>
        {{range .Notes}}
        <article class="note">
            <div>{{.HTML}}</div>
            <time>{{.CreatedAt}}</time>
        </article>
        {{else}}
        <p>No notes yet.</p>
        {{end}}
    </main>
    <script>
        document.getElementById('note-form').addEventListener('submit', async (e) => {
            e.preventDefault();
            const res = await fetch('/api/notes', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ content: document.getElementById('content').value }),
            });
            if (res.ok) {
                location.reload();
            }
        });
    </script>
</body>
</html>
`))
