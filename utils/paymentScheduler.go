package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"studiofit/config"
	"studiofit/database"
	"studiofit/models"
)

// InitializePaymentScheduler sets up the billing notification jobs
func InitializePaymentScheduler() {
	log.Println("[PAYMENT-SCHEDULER] Initializing payment scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind students of upcoming due dates
	c.AddFunc("0 9 * * *", func() {
		log.Println("[PAYMENT-SCHEDULER] Running daily payment check...")
		ProcessDueDateReminders()
		MarkOverduePayments()
	})

	// Run Mondays at 8 AM to report pending instructor commissions
	c.AddFunc("0 8 * * 1", func() {
		log.Println("[PAYMENT-SCHEDULER] Running weekly commission report...")
		ProcessPendingCommissions()
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Payment scheduler started - daily at 9 AM, commissions Mondays at 8 AM")
}

// ProcessDueDateReminders emails students whose payment is due within 3 days
func ProcessDueDateReminders() {
	db := database.Database.Db
	now := time.Now()
	threeDaysFromNow := now.AddDate(0, 0, 3)

	var duePayments []models.Payment
	if err := db.
		Where("status = ? AND reminder_sent = false AND is_deleted = false", models.PaymentPending).
		Where("due_date BETWEEN ? AND ?", now, threeDaysFromNow).
		Find(&duePayments).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching due payments: %v", err)
		return
	}

	log.Printf("[PAYMENT-SCHEDULER] Found %d payments due soon", len(duePayments))

	for _, payment := range duePayments {
		var student models.Student
		if err := db.Where("id = ?", payment.StudentID).First(&student).Error; err != nil {
			log.Printf("[PAYMENT-SCHEDULER] Error fetching student %d: %v", payment.StudentID, err)
			continue
		}

		SendPaymentReminderEmail(student.Email, student.Name, payment.Amount, payment.DueDate)

		db.Model(&payment).Update("reminder_sent", true)
		log.Printf("[PAYMENT-SCHEDULER] Sent due date reminder for payment %d to %s", payment.ID, student.Email)
	}
}

// MarkOverduePayments flags pending payments past their due date as OVERDUE
func MarkOverduePayments() {
	db := database.Database.Db

	result := db.Model(&models.Payment{}).
		Where("status = ? AND due_date < ? AND is_deleted = false", models.PaymentPending, time.Now()).
		Update("status", models.PaymentOverdue)

	if result.Error != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error marking overdue payments: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[PAYMENT-SCHEDULER] Marked %d payments as overdue", result.RowsAffected)
	}
}

// ProcessPendingCommissions mails the studio admin a summary of what each
// instructor is owed for completed classes
func ProcessPendingCommissions() {
	db := database.Database.Db

	type commissionRow struct {
		InstructorID uint
		Name         string
		Total        float64
		Classes      int
	}

	var rows []commissionRow
	if err := db.Model(&models.Commission{}).
		Select("commissions.instructor_id as instructor_id, users.name as name, SUM(commissions.amount) as total, COUNT(commissions.id) as classes").
		Joins("JOIN users ON users.id = commissions.instructor_id").
		Where("commissions.status = ? AND commissions.is_deleted = false", models.CommissionPending).
		Group("commissions.instructor_id, users.name").
		Scan(&rows).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching pending commissions: %v", err)
		return
	}

	if len(rows) == 0 {
		log.Println("[PAYMENT-SCHEDULER] No pending commissions")
		return
	}

	body := "<h2>Pending instructor commissions</h2><ul>"
	for _, row := range rows {
		body += fmt.Sprintf("<li>%s: %d classes, R$ %.2f</li>", row.Name, row.Classes, row.Total)
		log.Printf("[PAYMENT-SCHEDULER] Instructor %d (%s): %d classes, %.2f pending",
			row.InstructorID, row.Name, row.Classes, row.Total)
	}
	body += "</ul>"

	if config.AppConfig.AdminEmail != "" {
		go SendEmail([]string{config.AppConfig.AdminEmail}, "Pending instructor commissions", body)
	}
}

// SendPaymentReminderEmail sends a due date reminder to a student
func SendPaymentReminderEmail(email, name string, amount float64, dueDate time.Time) {
	subject := "Your plan payment is due soon"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2563eb;">Payment Reminder</h2>
        <p>Dear %s,</p>
        <p>Your plan payment of <strong>R$ %.2f</strong> is due on <strong>%s</strong>.</p>
        <p>Please settle it at the front desk or through your usual payment method.</p>
        <hr style="border: 1px solid #eee; margin: 20px 0;">
        <p style="font-size: 12px; color: #666;">This is an automated reminder from %s.</p>
    </div>
</body>
</html>`, name, amount, dueDate.Format("January 2, 2006"), config.AppConfig.AppName)

	go SendEmail([]string{email}, subject, body)
}
