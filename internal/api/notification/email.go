// Package notification gửi email giao dịch qua SMTP (gomail).
// Mọi email đều là best-effort: lỗi gửi được log, không bao giờ trả lên caller.
package notification

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	ordermodels "store_commerce/internal/api/order/models"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

// Mailer gửi email qua SMTP dialer
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer tạo mailer từ cấu hình SMTP.
// Trả về nil nếu SMTP chưa được cấu hình, caller dùng nil-safe methods bình thường.
func NewMailer() *Mailer {
	cfg := global.ServerConfig
	if cfg.SMTPHost == "" {
		logger.GetAppLogger().Warn("SMTP chưa được cấu hình, bỏ qua việc gửi email")
		return nil
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   from,
	}
}

// send gửi một email HTML, log lỗi nếu có
func (m *Mailer) send(to, subject, htmlBody string) {
	if m == nil {
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).WithError(err).Error("Gửi email thất bại")
	}
}

// dispatch chạy một tác vụ gửi email trong goroutine riêng có recover.
// GoProtect tự nó chạy đồng bộ nên phải gọi qua go, nếu không DialAndSend
// sẽ chặn request đang tạo đơn / đăng ký cho đến khi SMTP trả lời.
func dispatch(task func()) {
	go utility.GoProtect(task)
}

// sendAsync gửi email trong goroutine riêng để không chặn request
func (m *Mailer) sendAsync(to, subject, htmlBody string) {
	if m == nil {
		return
	}
	dispatch(func() {
		m.send(to, subject, htmlBody)
	})
}

// SendPasswordReset gửi email chứa link đặt lại mật khẩu.
// token là token gốc (chưa hash), chỉ xuất hiện trong email này.
func (m *Mailer) SendPasswordReset(to, name, token string) {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", global.ServerConfig.FrontendURL, token)
	body := fmt.Sprintf(`
		<p>Chào %s,</p>
		<p>Bạn (hoặc ai đó) đã yêu cầu đặt lại mật khẩu cho tài khoản này.</p>
		<p><a href="%s" style="display:inline-block;padding:10px 20px;text-decoration:none;border-radius:5px;background-color:#007bff;color:#fff;">Đặt lại mật khẩu</a></p>
		<p>Link có hiệu lực trong %d phút và chỉ dùng được một lần.</p>
		<p>Nếu không phải bạn yêu cầu, hãy bỏ qua email này.</p>`,
		name, resetURL, global.ServerConfig.ResetTokenExpMin)
	m.sendAsync(to, "Đặt lại mật khẩu", body)
}

// SendOrderConfirmation gửi email xác nhận đơn hàng cho khách
func (m *Mailer) SendOrderConfirmation(to, name string, order *ordermodels.Order) {
	body := fmt.Sprintf(`
		<p>Chào %s,</p>
		<p>Cảm ơn bạn đã đặt hàng. Đơn hàng <b>%s</b> đang chờ thanh toán.</p>
		%s
		<p>Phí giao hàng: %.2f<br>Tổng cộng: <b>%.2f</b></p>`,
		name, order.ID.Hex(), renderOrderItems(order), order.ShippingCost, order.TotalAmount)
	m.sendAsync(to, fmt.Sprintf("Xác nhận đơn hàng %s", order.ID.Hex()), body)
}

// SendAdminNewOrder thông báo đơn hàng mới cho các admin trong cấu hình
func (m *Mailer) SendAdminNewOrder(order *ordermodels.Order, customerEmail string) {
	if m == nil {
		return
	}
	admins := global.ServerConfig.AdminEmails
	if admins == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Có đơn hàng mới <b>%s</b> từ %s.</p>
		%s
		<p>Tổng cộng: <b>%.2f</b></p>`,
		order.ID.Hex(), customerEmail, renderOrderItems(order), order.TotalAmount)
	for _, admin := range strings.Split(admins, ",") {
		admin = strings.TrimSpace(admin)
		if admin != "" {
			m.sendAsync(admin, fmt.Sprintf("Đơn hàng mới %s", order.ID.Hex()), body)
		}
	}
}

// renderOrderItems dựng bảng HTML các dòng sản phẩm của đơn hàng
func renderOrderItems(order *ordermodels.Order) string {
	var b strings.Builder
	b.WriteString("<table border='0' cellpadding='5'>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>x%d</td><td>%.2f</td></tr>", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	b.WriteString("</table>")
	return b.String()
}
