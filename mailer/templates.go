package mailer

// HTML bodies mirror the storefront's transactional emails: an itemized
// confirmation for the customer and an action-required alert for the seller.

const customerTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; background: #f9f9f9; }
    .header { background: #2563eb; color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; background: white; }
    .order-box { background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #2563eb; }
    .item-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .total-box { background: #e8f5e8; padding: 15px; border-radius: 8px; font-weight: bold; font-size: 18px; text-align: center; }
    .address-box { background: #fff3cd; padding: 15px; border-radius: 8px; border: 1px solid #ffeaa7; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Order Confirmed!</h1>
      <p>Order {{.OrderNumber}} &bull; {{.OrderDate}}</p>
    </div>
    <div class="content">
      <p>Hi {{.CustomerName}},</p>
      <p>Thanks for your order. We are getting it ready and will let you know once it ships.</p>
      <div class="order-box">
        <h3>Items Ordered</h3>
        {{range .Items}}
        <div class="item-row">
          <strong>{{.Name}}</strong><br>
          <small>Qty: {{.Quantity}} &times; {{printf "%.2f" .UnitPrice}}</small>
          <div><strong>{{printf "%.2f" .LineTotal}}</strong></div>
        </div>
        {{end}}
      </div>
      <div class="order-box">
        <p><strong>Subtotal:</strong> {{printf "%.2f" .Subtotal}}</p>
        <p><strong>Delivery:</strong> {{printf "%.2f" .Delivery}}</p>
      </div>
      <div class="total-box">TOTAL: {{printf "%.2f" .Total}}</div>
      <div class="address-box">
        <h3>Delivery Address</h3>
        <p><strong>{{.Address.Name}}</strong></p>
        <p>{{.Address.Phone}}</p>
        <p>{{.Address.AddressLine1}}</p>
        {{if .Address.AddressLine2}}<p>{{.Address.AddressLine2}}</p>{{end}}
        <p>{{.Address.City}}, {{.Address.State}} - {{.Address.Pincode}}</p>
      </div>
      <p>Expected delivery: <strong>{{.ExpectedDelivery}}</strong></p>
    </div>
  </div>
</body>
</html>`

const adminTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; background: #f9f9f9; }
    .header { background: #2563eb; color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; background: white; }
    .order-box { background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #2563eb; }
    .item-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .total-box { background: #e8f5e8; padding: 15px; border-radius: 8px; font-weight: bold; font-size: 18px; text-align: center; }
    .address-box { background: #fff3cd; padding: 15px; border-radius: 8px; border: 1px solid #ffeaa7; }
    .urgent { background: #ff6b6b; color: white; padding: 10px; text-align: center; border-radius: 8px; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>NEW ORDER ALERT</h1>
      <h2>Quick Heal Seller Dashboard</h2>
      <p>Order {{.OrderNumber}} &bull; {{printf "%.2f" .Total}}</p>
    </div>
    <div class="content">
      <div class="urgent"><strong>IMMEDIATE ACTION REQUIRED</strong></div>
      <div class="order-box">
        <h3>Order Details</h3>
        <p><strong>Order ID:</strong> {{.OrderNumber}}</p>
        <p><strong>Customer:</strong> {{.CustomerName}}</p>
        <p><strong>Phone:</strong> {{.Address.Phone}}</p>
        <p><strong>Date:</strong> {{.OrderDate}}</p>
        <p><strong>Expected Delivery:</strong> {{.ExpectedDelivery}}</p>
      </div>
      <div class="order-box">
        <h3>Items Ordered ({{len .Items}})</h3>
        {{range .Items}}
        <div class="item-row">
          <strong>{{.Name}}</strong><br>
          <small>Qty: {{.Quantity}} &times; {{printf "%.2f" .UnitPrice}}</small>
          <div><strong>{{printf "%.2f" .LineTotal}}</strong></div>
        </div>
        {{end}}
      </div>
      <div class="total-box">TOTAL: {{printf "%.2f" .Total}} (COD)</div>
      <div class="address-box">
        <h3>Delivery Address</h3>
        <p><strong>{{.Address.Name}}</strong></p>
        <p>{{.Address.Phone}}</p>
        <p>{{.Address.AddressLine1}}</p>
        {{if .Address.AddressLine2}}<p>{{.Address.AddressLine2}}</p>{{end}}
        <p>{{.Address.City}}, {{.Address.State}} - {{.Address.Pincode}}</p>
      </div>
    </div>
  </div>
</body>
</html>`

const appointmentAdminTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; background: #f9f9f9; }
    .header { background: #0891b2; color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; background: white; }
    .detail-box { background: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #0891b2; }
    .urgent { background: #fef3c7; padding: 15px; border-radius: 8px; border-left: 4px solid #f59e0b; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Appointment Request</h1>
    </div>
    <div class="content">
      <div class="detail-box">
        <h3>Patient Details</h3>
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Preferred Date:</strong> {{.Date}}</p>
        <p><strong>Doctor Requested:</strong> {{.Doctor}}</p>
        {{if .Message}}<p><strong>Health Concern:</strong> {{.Message}}</p>{{end}}
      </div>
      <div class="urgent">
        <p><strong>Action Required:</strong> Please review this appointment request and contact the patient within 24 hours.</p>
      </div>
      <p><small>Submitted {{.RequestedAt}} through the website appointment form.</small></p>
    </div>
  </div>
</body>
</html>`

const appointmentPatientTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; background: #f9f9f9; }
    .header { background: #10b981; color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; background: white; }
    .detail-box { background: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #3b82f6; }
    .next-box { background: #dcfce7; padding: 20px; border-radius: 8px; border-left: 4px solid #22c55e; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Appointment Request Received</h1>
    </div>
    <div class="content">
      <p>Dear {{.Name}},</p>
      <p>Thank you for your appointment request. Our medical team will review it promptly.</p>
      <div class="detail-box">
        <h3>Your Appointment Details</h3>
        <p><strong>Doctor:</strong> {{.Doctor}}</p>
        <p><strong>Preferred Date:</strong> {{.Date}}</p>
        {{if .Message}}<p><strong>Your Concern:</strong> {{.Message}}</p>{{end}}
      </div>
      <div class="next-box">
        <h4>What Happens Next?</h4>
        <ul>
          <li>Our medical team will review your appointment request</li>
          <li>We will contact you within <strong>24 hours</strong> to confirm your appointment time</li>
          <li>Please keep this email for your records</li>
        </ul>
      </div>
    </div>
  </div>
</body>
</html>`

const completionBody = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your order %s is completed!</h2>
  <p>Thanks for shopping with Quick Heal. We hope the medicines reached you safely.</p>
</body>
</html>`
