package notify

// The bodies below reproduce the mails the site has always sent, inline
// styles and all, so the promoter's inbox filters keep working. HTML bodies
// reference the logo through cid:profefranko-logo.

const contactHTMLTemplate = `<div style="font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background-color: #f5f5f5; padding: 24px;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width: 640px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden;">
    <tr>
      <td style="padding: 24px 24px 16px 24px; text-align: center; border-bottom: 1px solid #eee;">
        <img src="cid:profefranko-logo" alt="Logo" style="max-width: 180px; height: auto; display: block; margin: 0 auto 8px auto;" />
        <p style="margin: 0; font-size: 12px; color: #888;">Nuevo mensaje desde el formulario de contacto</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 24px;">
        <h1 style="margin: 0 0 12px 0; font-size: 20px; font-weight: 600; color: #111;">
          Detalles del contacto
        </h1>

        <table cellpadding="0" cellspacing="0" style="width: 100%; font-size: 14px; border-collapse: collapse; margin-bottom: 16px;">
          <tr>
            <td style="padding: 6px 0; font-weight: 600; width: 110px;">Rol</td>
            <td style="padding: 6px 0;">{{.RoleLabel}}</td>
          </tr>
          <tr>
            <td style="padding: 6px 0; font-weight: 600;">Nombre</td>
            <td style="padding: 6px 0;">{{.Submission.Name}}</td>
          </tr>
          <tr>
            <td style="padding: 6px 0; font-weight: 600;">Email</td>
            <td style="padding: 6px 0;">{{.Submission.Email}}</td>
          </tr>
          {{if .Submission.Phone}}<tr>
            <td style="padding: 6px 0; font-weight: 600;">Teléfono</td>
            <td style="padding: 6px 0;">{{.Submission.Phone}}</td>
          </tr>
          {{end}}{{if .Submission.Organization}}<tr>
            <td style="padding: 6px 0; font-weight: 600;">Organización</td>
            <td style="padding: 6px 0;">{{.Submission.Organization}}</td>
          </tr>
          {{end}}{{if .Submission.City}}<tr>
            <td style="padding: 6px 0; font-weight: 600;">Ciudad</td>
            <td style="padding: 6px 0;">{{.Submission.City}}</td>
          </tr>
          {{end}}{{if .Submission.Country}}<tr>
            <td style="padding: 6px 0; font-weight: 600;">País</td>
            <td style="padding: 6px 0;">{{.Submission.Country}}</td>
          </tr>
          {{end}}
        </table>

        <h2 style="margin: 16px 0 8px 0; font-size: 16px; font-weight: 600; color: #111;">
          Mensaje
        </h2>
        <p style="white-space: pre-wrap; margin: 0; line-height: 1.6; font-size: 14px; color: #333;">
          {{.Submission.Message}}
        </p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 24px 24px 24px; font-size: 12px; color: #999; text-align: center; border-top: 1px solid #eee;">
        Este mensaje se ha enviado desde el formulario de tu sitio web.
      </td>
    </tr>
  </table>
</div>
`

const contactTextTemplate = `Nuevo mensaje de contacto

Rol: {{.RoleLabel}}
Nombre: {{.Submission.Name}}
Email: {{.Submission.Email}}
{{if .Submission.Phone}}Teléfono: {{.Submission.Phone}}
{{end}}{{if .Submission.Organization}}Organización: {{.Submission.Organization}}
{{end}}{{if .Submission.City}}Ciudad: {{.Submission.City}}
{{end}}{{if .Submission.Country}}País: {{.Submission.Country}}
{{end}}
Mensaje:
{{.Submission.Message}}
`

const quoteHTMLTemplate = `<div style="background-color:#f3f4f6;margin:0;padding:20px 12px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;">
  <table width="100%" border="0" cellspacing="0" cellpadding="0" style="max-width:560px;margin:0 auto;">
    <tr>
      <td style="text-align:center;padding-bottom:12px;">
        <img src="cid:profefranko-logo" alt="Profe Franko" width="80" height="80" style="display:block;margin:0 auto 8px auto;border-radius:50%;" />
        <div style="font-size:20px;font-weight:800;color:#111827;text-transform:uppercase;letter-spacing:0.08em;">
          Cotización de Evento
        </div>
        <div style="margin-top:4px;font-size:12px;color:#6b7280;">
          Solicitud enviada desde
          <a href="{{.BaseURL}}" style="color:#facc15;text-decoration:none;font-weight:600;">profefranko.com</a>
        </div>
      </td>
    </tr>

    <tr>
      <td>
        <div style="background-color:#ffffff;border-radius:12px;padding:16px 18px;border:1px solid #e5e7eb;box-shadow:0 4px 16px rgba(15,23,42,0.08);color:#111827;font-size:13px;">

          <h3 style="margin:0 0 8px 0;font-size:13px;color:#4b5563;text-transform:uppercase;letter-spacing:0.08em;">
            Datos del cliente
          </h3>
          <table width="100%" border="0" cellspacing="0" cellpadding="0" style="font-size:13px;margin-bottom:10px;">
            <tr>
              <td style="padding:3px 0;color:#6b7280;width:150px;">Nombre:</td>
              <td style="padding:3px 0;color:#111827;font-weight:600;">{{.Submission.ClientName}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Email:</td>
              <td style="padding:3px 0;color:#111827;">
                <a href="mailto:{{.Submission.ClientEmail}}" style="color:#2563eb;text-decoration:none;">{{.Submission.ClientEmail}}</a>
              </td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Teléfono:</td>
              <td style="padding:3px 0;color:#111827;">{{.Submission.ClientPhone}}</td>
            </tr>
          </table>

          <h3 style="margin:8px 0 6px 0;font-size:13px;color:#4b5563;text-transform:uppercase;letter-spacing:0.08em;">
            Detalles del evento
          </h3>
          <table width="100%" border="0" cellspacing="0" cellpadding="0" style="font-size:13px;margin-bottom:10px;">
            <tr>
              <td style="padding:3px 0;color:#6b7280;width:150px;">Fecha:</td>
              <td style="padding:3px 0;color:#111827;">{{.EventDate}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Hora:</td>
              <td style="padding:3px 0;color:#111827;">{{.EventTime}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Tipo de evento:</td>
              <td style="padding:3px 0;color:#111827;font-weight:600;">{{.EventTypeLabel}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Número de peleas:</td>
              <td style="padding:3px 0;color:#111827;">{{.Submission.NumberOfFights}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Cantidad de asistentes (aprox.):</td>
              <td style="padding:3px 0;color:#111827;">{{.Submission.ExpectedAttendance}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Presupuesto:</td>
              <td style="padding:3px 0;color:#111827;">{{.BudgetRange}}</td>
            </tr>
          </table>

          <h3 style="margin:8px 0 6px 0;font-size:13px;color:#4b5563;text-transform:uppercase;letter-spacing:0.08em;">
            Lugar del evento
          </h3>
          <table width="100%" border="0" cellspacing="0" cellpadding="0" style="font-size:13px;margin-bottom:10px;">
            <tr>
              <td style="padding:3px 0;color:#6b7280;width:150px;">Nombre del lugar:</td>
              <td style="padding:3px 0;color:#111827;">{{.VenueName}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Dirección:</td>
              <td style="padding:3px 0;color:#111827;">{{.VenueAddress}}</td>
            </tr>
          </table>

          <h3 style="margin:8px 0 6px 0;font-size:13px;color:#4b5563;text-transform:uppercase;letter-spacing:0.08em;">
            Servicios y equipo
          </h3>
          <table width="100%" border="0" cellspacing="0" cellpadding="0" style="font-size:13px;margin-bottom:10px;">
            <tr>
              <td style="padding:3px 0;color:#6b7280;width:150px;">Ring profesional:</td>
              <td style="padding:3px 0;color:#111827;">{{.RingNeeded}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Equipo necesario:</td>
              <td style="padding:3px 0;color:#111827;">{{.Equipment}}</td>
            </tr>
            <tr>
              <td style="padding:3px 0;color:#6b7280;">Servicios adicionales:</td>
              <td style="padding:3px 0;color:#111827;">{{.Services}}</td>
            </tr>
          </table>

          <h3 style="margin:8px 0 6px 0;font-size:13px;color:#4b5563;text-transform:uppercase;letter-spacing:0.08em;">
            Requerimientos especiales
          </h3>
          <div style="font-size:13px;line-height:1.5;color:#111827;background-color:#f9fafb;border-radius:8px;padding:10px 12px;border:1px solid #e5e7eb;white-space:pre-wrap;">
            {{.Requirements}}
          </div>

          <div style="margin-top:10px;font-size:11px;color:#9ca3af;text-align:right;">
            Ver más en
            <a href="{{.BaseURL}}" style="color:#facc15;text-decoration:none;font-weight:600;">profefranko.com</a>
          </div>
        </div>
      </td>
    </tr>
  </table>
</div>
`

const quoteTextTemplate = `Nueva solicitud de cotización de evento

[DATOS DEL CLIENTE]
Nombre: {{.Submission.ClientName}}
Email: {{.Submission.ClientEmail}}
Teléfono: {{.Submission.ClientPhone}}

[DETALLES DEL EVENTO]
Fecha: {{.EventDate}}
Hora: {{.EventTime}}
Tipo de evento: {{.EventTypeLabel}}
Número de peleas: {{.Submission.NumberOfFights}}
Cantidad de publico (aprox.): {{.Submission.ExpectedAttendance}}
Presupuesto: {{.BudgetRange}}

[LUGAR]
Nombre del lugar: {{.VenueName}}
Dirección: {{.VenueAddress}}

[SERVICIOS]
Ring profesional: {{.RingNeeded}}
Equipo necesario: {{.Equipment}}
Servicios adicionales: {{.Services}}

[REQUERIMIENTOS ESPECIALES]
{{.Requirements}}
`
