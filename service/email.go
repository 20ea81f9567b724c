package service

import (
	"fmt"
	"strings"

	"foodathome/config"
	"foodathome/models"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务（新订单提醒）
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOrderNotification 给厨师发送新订单提醒邮件
func (s *EmailService) SendOrderNotification(toEmail, menuName string, order *models.Order) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}

	subject := fmt.Sprintf("【FoodatHome】%s 的新订单", menuName)
	body := s.generateOrderEmailBody(menuName, order)

	return s.sendEmail(toEmail, subject, body)
}

// generateOrderEmailBody 生成订单提醒邮件内容
func (s *EmailService) generateOrderEmailBody(menuName string, order *models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">%.2f</td></tr>`,
			item.Name, item.Quantity, item.Price))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #ea580c, #c2410c); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 10px; border-bottom: 1px solid #eee; text-align: left; }
        th { background: #fff7ed; color: #9a3412; }
        .total { font-size: 18px; font-weight: 600; color: #ea580c; text-align: right; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🍽️ FoodatHome</h1>
        </div>
        <div class="content">
            <p><strong>%s</strong> 在菜单「%s」下了一份新订单：</p>
            <table>
                <tr><th>菜品</th><th style="text-align:center;">数量</th><th style="text-align:right;">单价</th></tr>
                %s
            </table>
            <p class="total">合计：%.2f</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© FoodatHome - 家庭点餐小助手</p>
        </div>
    </div>
</body>
</html>
`, order.Orderer, menuName, rows.String(), order.Total)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【FoodatHome】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— FoodatHome</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
