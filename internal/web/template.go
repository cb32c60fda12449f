package web

// pageTemplate is the whole UI: a transcript pane on the left, the report
// pane with the generate button on the right. The script posts the
// transcript to /api/report and swaps the panel content, keeping the button
// disabled while the request is in flight.
const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Incident Post-Mortem Generator</title>
<style>
  body {
    margin: 0 auto;
    max-width: 1200px;
    padding: 1.5rem;
    font-family: system-ui, sans-serif;
    color: #1f2430;
    background: #f6f7f9;
  }
  h1 { margin-bottom: 0.25rem; }
  .tagline { margin-top: 0; color: #5a6372; }
  main {
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: 1.5rem;
    align-items: start;
  }
  .pane {
    background: #fff;
    border: 1px solid #d9dde3;
    border-radius: 8px;
    padding: 1rem;
  }
  .pane h2 { margin-top: 0; font-size: 1.1rem; }
  textarea {
    width: 100%;
    min-height: 26rem;
    box-sizing: border-box;
    border: 1px solid #d9dde3;
    border-radius: 6px;
    padding: 0.75rem;
    font: 0.9rem/1.5 ui-monospace, monospace;
    resize: vertical;
  }
  button {
    width: 100%;
    padding: 0.6rem;
    border: 0;
    border-radius: 6px;
    background: #2257d6;
    color: #fff;
    font-size: 1rem;
    cursor: pointer;
  }
  button:disabled { background: #8fa6dd; cursor: wait; }
  .warning {
    margin-top: 0.75rem;
    padding: 0.5rem 0.75rem;
    border-radius: 6px;
    background: #fdf3d7;
    color: #7a5b00;
  }
  .report {
    margin-top: 0.75rem;
    min-height: 22rem;
    border: 1px solid #e4e7ec;
    border-radius: 6px;
    padding: 0.75rem 1rem;
    overflow-wrap: break-word;
  }
  .report.failed { color: #a3262c; background: #fdf1f1; }
</style>
</head>
<body>
<h1>Incident Post-Mortem Generator</h1>
<p class="tagline">Turns a raw incident chat transcript into a structured post-mortem report.</p>
<main>
  <section class="pane">
    <h2>Transcript</h2>
    <textarea id="transcript" spellcheck="false">{{.Example}}</textarea>
  </section>
  <section class="pane">
    <h2>Report</h2>
    <button id="generate" type="button">Generate report</button>
    <div id="warning" class="warning" hidden></div>
    <div id="report" class="report{{if .Failed}} failed{{end}}">{{.ReportHTML}}</div>
  </section>
</main>
<script>
  const button = document.getElementById('generate');
  const warning = document.getElementById('warning');
  const panel = document.getElementById('report');

  button.addEventListener('click', async () => {
    warning.hidden = true;

    const transcript = document.getElementById('transcript').value;
    if (!transcript.trim()) {
      warning.textContent = 'Please paste a transcript first.';
      warning.hidden = false;
      return;
    }

    button.disabled = true;
    panel.classList.remove('failed');
    panel.textContent = 'Analyzing the transcript...';

    try {
      const resp = await fetch('/api/report', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({transcript: transcript}),
      });
      const body = await resp.json();
      if (!resp.ok) {
        panel.classList.add('failed');
        panel.textContent = body.error;
        return;
      }
      panel.innerHTML = body.html;
    } catch (err) {
      panel.classList.add('failed');
      panel.textContent = 'Report generation failed. Check the API key or network and try again.';
    } finally {
      button.disabled = false;
    }
  });
</script>
</body>
</html>
`
