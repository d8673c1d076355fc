package handlers

const loginPageHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Sign in</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #f5f5f5;
        }
        .card {
            background: white;
            padding: 2rem;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
            width: 320px;
        }
        h1 {
            font-size: 1.25rem;
            margin: 0 0 1rem;
        }
        input[type="email"] {
            width: 100%;
            padding: 0.5rem;
            margin-bottom: 1rem;
            border: 1px solid #ccc;
            border-radius: 4px;
            box-sizing: border-box;
        }
        button {
            width: 100%;
            padding: 0.5rem;
            background: #2563eb;
            color: white;
            border: none;
            border-radius: 4px;
            cursor: pointer;
        }
        button:disabled {
            background: #93c5fd;
        }
        .message {
            margin-top: 1rem;
            font-size: 0.875rem;
            color: #555;
        }
    </style>
</head>
<body>
    <div class="card">
        <h1>Sign in</h1>
        <form id="login-form">
            <input type="email" id="email" placeholder="you@example.com" required autofocus>
            <button type="submit" id="submit">Send magic link</button>
        </form>
        <div class="message" id="message"></div>
    </div>
    <script>
        const form = document.getElementById('login-form');
        const message = document.getElementById('message');
        const submit = document.getElementById('submit');

        form.addEventListener('submit', async (e) => {
            e.preventDefault();
            submit.disabled = true;
            message.textContent = '';
            try {
                const res = await fetch('/api/auth/login', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ email: document.getElementById('email').value }),
                });
                if (res.ok) {
                    message.textContent = 'If that address is registered, a sign-in link is on its way.';
                } else {
                    message.textContent = 'Please enter a valid email address.';
                    submit.disabled = false;
                }
            } catch (err) {
                message.textContent = 'Something went wrong. Please try again.';
                submit.disabled = false;
            }
        });
    </script>
</body>
</html>
`
